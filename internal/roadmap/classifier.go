package roadmap

import (
	"strings"

	"github.com/jerrychoi/bookroad/internal/model"
	"github.com/jerrychoi/bookroad/pkg/aladin"
)

// Classification weights: a step-rule keyword hit counts double, subject
// relevance adds one to every step so weakly-related items still land
// somewhere sensible.
const (
	classifyRuleWeight  = 2
	classifyTokenWeight = 1
)

type stepRule struct {
	step     int // 0-based bucket index
	keywords []string
}

// lateMedievalRules covers the scholastics that share one reading arc:
// introduction, then the metaphysical core, then commentary and debate.
var lateMedievalRules = []stepRule{
	{step: 0, keywords: []string{"입문", "개론", "가이드", "선집", "introduction"}},
	{step: 1, keywords: []string{"존재", "인식", "이성", "신", "논증", "metaphysics"}},
	{step: 2, keywords: []string{"주석", "논쟁", "스콜라", "commentary", "해설"}},
}

var classifierRules = map[model.Subject][]stepRule{
	model.SubjectPlato: {
		{step: 0, keywords: []string{"대화편", "입문", "소크라테스", "변론", "크리톤", "에우튀프론", "메논", "plato"}},
		{step: 1, keywords: []string{"국가", "향연", "파이돈", "파이드로스", "정의", "이데아", "republic", "symposium"}},
		{step: 2, keywords: []string{"티마이오스", "법률", "파르메니데스", "소피스트", "정치가", "우주", "timaeus", "laws"}},
	},
	model.SubjectAristotle: {
		{step: 0, keywords: []string{"윤리", "니코마코스", "정치학", "시학", "수사학", "행복", "virtue", "ethics", "poetics"}},
		{step: 1, keywords: []string{"논리", "범주론", "명제", "해석", "오르가논", "분석론", "topics", "logic", "categories"}},
		{step: 2, keywords: []string{"형이상학", "자연학", "영혼", "존재", "원인", "metaphysics", "physics", "de anima"}},
	},
	model.SubjectAugustine: {
		{step: 0, keywords: []string{"고백록", "회심", "내면", "confessions"}},
		{step: 1, keywords: []string{"신국론", "역사", "도시", "국가", "city of god"}},
		{step: 2, keywords: []string{"삼위일체", "자유의지", "은총", "원죄", "trinity", "free will"}},
	},
	model.SubjectAnselm: {
		{step: 0, keywords: []string{"프로슬로기온", "모놀로기온", "proslogion", "monologion"}},
		{step: 1, keywords: []string{"존재", "신 존재", "논증", "ontological", "proof", "존재논증"}},
		{step: 2, keywords: []string{"속죄", "만족", "cur deus homo", "스콜라"}},
	},
	model.SubjectAquinas: {
		{step: 0, keywords: []string{"입문", "요약", "가이드", "개론", "introduction"}},
		{step: 1, keywords: []string{"신학대전", "summa", "제1부", "제2부", "제3부"}},
		{step: 2, keywords: []string{"주석", "아리스토텔레스", "형이상학", "commentary"}},
	},
	model.SubjectBoethius:   lateMedievalRules,
	model.SubjectAvicenna:   lateMedievalRules,
	model.SubjectAverroes:   lateMedievalRules,
	model.SubjectDunsScotus: lateMedievalRules,
	model.SubjectOckham:     lateMedievalRules,
	model.SubjectDescartes: {
		{step: 0, keywords: []string{"방법서설", "방법", "discourse on method", "입문", "guide"}},
		{step: 1, keywords: []string{"성찰", "제1철학", "meditations", "본유관념", "인식"}},
		{step: 2, keywords: []string{"정념론", "passions", "철학의 원리", "principles", "자연"}},
	},
	model.SubjectSpinoza: {
		{step: 0, keywords: []string{"입문", "가이드", "지도", "introduction"}},
		{step: 1, keywords: []string{"윤리학", "ethics", "기하학적", "실체", "일원론"}},
		{step: 2, keywords: []string{"정치", "신학정치", "theological-political", "서간"}},
	},
	model.SubjectLocke: {
		{step: 0, keywords: []string{"입문", "개론", "guide"}},
		{step: 1, keywords: []string{"인간오성", "human understanding", "경험론"}},
		{step: 2, keywords: []string{"정부론", "letters", "심화", "해설"}},
	},
	model.SubjectLeibniz: {
		{step: 0, keywords: []string{"입문", "개론", "guide"}},
		{step: 1, keywords: []string{"단자론", "monadology", "형이상학"}},
		{step: 2, keywords: []string{"신정론", "theodicy", "서간", "해설"}},
	},
	model.SubjectHume: {
		{step: 0, keywords: []string{"입문", "개론", "guide"}},
		{step: 1, keywords: []string{"인성론", "treatise", "인간본성", "human nature"}},
		{step: 2, keywords: []string{"인간지성", "enquiry", "종교", "대화", "해설"}},
	},
	model.SubjectRousseau: {
		{step: 0, keywords: []string{"입문", "개론", "guide"}},
		{step: 1, keywords: []string{"사회계약론", "social contract", "에밀", "emile"}},
		{step: 2, keywords: []string{"불평등", "discourse", "고백록", "해설"}},
	},
	model.SubjectKant: {
		{step: 0, keywords: []string{"입문", "가이드", "guide"}},
		{step: 1, keywords: []string{"순수이성비판", "critique of pure reason", "비판철학"}},
		{step: 2, keywords: []string{"실천이성", "판단력", "도덕형이상학", "해설"}},
	},
	model.SubjectMarx: {
		{step: 0, keywords: []string{"입문", "개론", "guide"}},
		{step: 1, keywords: []string{"공산당 선언", "manifesto", "독일 이데올로기", "유물론"}},
		{step: 2, keywords: []string{"자본", "capital", "정치경제학", "경제학비판"}},
	},
	model.SubjectHegel: {
		{step: 0, keywords: []string{"입문", "개론", "guide"}},
		{step: 1, keywords: []string{"정신현상학", "phenomenology", "논리학", "logic"}},
		{step: 2, keywords: []string{"법철학", "역사철학", "강의", "해설"}},
	},
	model.SubjectNietzsche: {
		{step: 0, keywords: []string{"입문", "개론", "guide"}},
		{step: 1, keywords: []string{"차라투스트라", "zarathustra", "선악의 저편", "beyond good and evil"}},
		{step: 2, keywords: []string{"도덕의 계보", "genealogy", "우상의 황혼", "해설"}},
	},
	model.SubjectKierkegaard: {
		{step: 0, keywords: []string{"입문", "개론", "guide"}},
		{step: 1, keywords: []string{"죽음에 이르는 병", "불안의 개념", "병", "anxiety"}},
		{step: 2, keywords: []string{"철학적 단편", "사랑의 역사", "해설"}},
	},
}

// Classify assigns b to a reading step for subject by keyword scoring
// over the lowercased title+author+description haystack. Ties resolve
// to the earliest step; a book matching nothing lands in step 0.
func Classify(b aladin.Book, subject model.Subject) int {
	text := strings.ToLower(strings.Join([]string{b.Title, b.Author, b.Description}, " "))

	var scores [model.StepCount]int
	for _, rule := range classifierRules[subject] {
		for _, kw := range rule.keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				scores[rule.step] += classifyRuleWeight
			}
		}
	}

	// Subject relevance boosts every step once, keeping generally
	// related books out of an accidental zero-score bucket race.
	for _, tok := range subject.FilterTokens() {
		if strings.Contains(text, strings.ToLower(tok)) {
			for i := range scores {
				scores[i] += classifyTokenWeight
			}
			break
		}
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best
}
