// Package roadmap holds the curated reading roadmaps and the
// reconciliation pipeline that decorates them with live catalog data.
package roadmap

import (
	"sort"

	"github.com/jerrychoi/bookroad/internal/model"
)

// Books returns the curated entries for subject, ordered by step then
// title. The returned slice is a copy; callers may reorder it freely.
func Books(subject model.Subject) []model.CuratedBook {
	var out []model.CuratedBook
	for _, b := range curated {
		if b.Subject == subject {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Step != out[j].Step {
			return out[i].Step < out[j].Step
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// curated is the hand-authored roadmap data. Entries recommend works,
// not specific translations or editions; AltTitles absorb the common
// translation and edition variants so catalog matching still lands.
var curated = []model.CuratedBook{
	// Plato
	{
		Subject: model.SubjectPlato, Step: 1, Title: "소크라테스의 변명", Author: "플라톤", Role: model.RoleIntroduction,
		Reason:    "소크라테스의 논변 방식과 철학의 출발점을 가장 짧게 이해하는 관문.",
		AltTitles: []string{"변명", "Apology", "Apology of Socrates", "소크라테스의 변명·크리톤"},
	},
	{
		Subject: model.SubjectPlato, Step: 1, Title: "크리톤", Author: "플라톤", Role: model.RoleIntroduction,
		Reason:    "법·정의·시민적 의무를 둘러싼 핵심 질문을 짧은 대화로 익힐 수 있음.",
		AltTitles: []string{"Crito", "크리톤/변명"},
	},
	{
		Subject: model.SubjectPlato, Step: 1, Title: "에우튀프론", Author: "플라톤", Role: model.RoleIntroduction,
		Reason:    "'경건/정의' 정의하기가 왜 어려운지, 대화편의 논증 리듬을 몸에 익힘.",
		AltTitles: []string{"Euthyphro", "에우튀프론/소크라테스의 변명"},
	},
	{
		Subject: model.SubjectPlato, Step: 2, Title: "국가", Author: "플라톤", Role: model.RoleCore,
		Reason:    "정의·국가·영혼 구조·이데아를 한 번에 잡는 플라톤 철학의 중심축.",
		AltTitles: []string{"국가(共和國)", "Republic", "플라톤 국가"},
	},
	{
		Subject: model.SubjectPlato, Step: 2, Title: "향연", Author: "플라톤", Role: model.RoleCore,
		Reason:    "사랑(에로스) 논의를 통해 '아름다움→이데아'로 상승하는 사유를 체감.",
		AltTitles: []string{"Symposium", "플라톤 향연"},
	},
	{
		Subject: model.SubjectPlato, Step: 3, Title: "티마이오스", Author: "플라톤", Role: model.RoleAdvanced,
		Reason:    "우주론·자연철학·형이상학이 결합된 난해한 대화편. 핵심 저작 이해 후 도전.",
		AltTitles: []string{"Timaeus", "플라톤 티마이오스"},
	},
	{
		Subject: model.SubjectPlato, Step: 3, Title: "법률", Author: "플라톤", Role: model.RoleAdvanced,
		Reason:    "이상국가에서 실제 제도 설계로 이동하며, 후기 플라톤의 현실 감각을 확인.",
		AltTitles: []string{"Laws", "플라톤 법률"},
	},

	// Aristotle
	{
		Subject: model.SubjectAristotle, Step: 1, Title: "니코마코스 윤리학", Author: "아리스토텔레스", Role: model.RoleIntroduction,
		Reason:    "덕·행복·습관 개념으로 아리스토텔레스의 사고방식을 가장 직관적으로 익힘.",
		AltTitles: []string{"윤리학", "Nicomachean Ethics", "니코마코스윤리학"},
	},
	{
		Subject: model.SubjectAristotle, Step: 1, Title: "정치학", Author: "아리스토텔레스", Role: model.RoleIntroduction,
		Reason:    "윤리학과 이어지는 '좋은 삶/좋은 공동체' 논의를 통해 전체 그림을 잡기 좋음.",
		AltTitles: []string{"Politics", "아리스토텔레스 정치학"},
	},
	{
		Subject: model.SubjectAristotle, Step: 1, Title: "시학", Author: "아리스토텔레스", Role: model.RoleIntroduction,
		Reason:    "짧지만 강력한 텍스트. 개념 정의 방식(원인/구조)을 맛보기로 좋음.",
		AltTitles: []string{"Poetics", "아리스토텔레스 시학"},
	},
	{
		Subject: model.SubjectAristotle, Step: 2, Title: "범주론", Author: "아리스토텔레스", Role: model.RoleCore,
		Reason:    "논리학 입문. '개념을 분류하는 방식'이 이후 텍스트 전반의 문법이 됨.",
		AltTitles: []string{"Categories", "범주론/해석에 대하여"},
	},
	{
		Subject: model.SubjectAristotle, Step: 2, Title: "해석에 대하여", Author: "아리스토텔레스", Role: model.RoleCore,
		Reason:    "명제·부정·필연 등 논리적 구조를 다룸. 오르가논의 대표 관문.",
		AltTitles: []string{"On Interpretation", "De Interpretatione"},
	},
	{
		Subject: model.SubjectAristotle, Step: 3, Title: "형이상학", Author: "아리스토텔레스", Role: model.RoleAdvanced,
		Reason:    "'존재를 존재로서' 탐구. 가장 핵심이면서도 난해한 본령.",
		AltTitles: []string{"Metaphysics", "아리스토텔레스 형이상학"},
	},
	{
		Subject: model.SubjectAristotle, Step: 3, Title: "자연학", Author: "아리스토텔레스", Role: model.RoleAdvanced,
		Reason:    "변화·운동·원인을 통해 자연 세계의 철학적 설명을 제공.",
		AltTitles: []string{"Physics", "아리스토텔레스 자연학"},
	},
	{
		Subject: model.SubjectAristotle, Step: 3, Title: "영혼에 대하여", Author: "아리스토텔레스", Role: model.RoleAdvanced,
		Reason:    "심리·인식·생명 이해의 고전. 형이상학/자연학과 연결되는 핵심 텍스트.",
		AltTitles: []string{"De Anima", "On the Soul"},
	},

	// Augustine
	{
		Subject: model.SubjectAugustine, Step: 1, Title: "고백록", Author: "아우구스티누스", Role: model.RoleIntroduction,
		Reason:    "내면 성찰과 회심의 서사로 중세 철학의 출발 감각을 가장 잘 익힘.",
		AltTitles: []string{"Confessions", "아우구스티누스 고백록"},
	},
	{
		Subject: model.SubjectAugustine, Step: 1, Title: "교사론", Author: "아우구스티누스", Role: model.RoleIntroduction,
		Reason:    "언어/기억/가르침을 통해 인식론적 핵심 문제로 자연스럽게 진입.",
		AltTitles: []string{"De Magistro", "On the Teacher"},
	},
	{
		Subject: model.SubjectAugustine, Step: 2, Title: "신국론", Author: "아우구스티누스", Role: model.RoleCore,
		Reason:    "역사·정치·신학이 엮인 거대 텍스트. 중세 사유의 틀을 잡는 핵심.",
		AltTitles: []string{"City of God", "De Civitate Dei"},
	},
	{
		Subject: model.SubjectAugustine, Step: 2, Title: "자유의지론", Author: "아우구스티누스", Role: model.RoleCore,
		Reason:    "악과 자유의지 문제를 체계적으로 다룸. 이후 스콜라 논쟁의 출발점.",
		AltTitles: []string{"On Free Choice of the Will", "De libero arbitrio"},
	},
	{
		Subject: model.SubjectAugustine, Step: 3, Title: "삼위일체론", Author: "아우구스티누스", Role: model.RoleAdvanced,
		Reason:    "가장 난도 높은 신학/형이상학 텍스트. 핵심 논점을 잡은 뒤 도전.",
		AltTitles: []string{"On the Trinity", "De Trinitate"},
	},

	// Anselm
	{
		Subject: model.SubjectAnselm, Step: 1, Title: "프로슬로기온", Author: "안셀무스", Role: model.RoleIntroduction,
		Reason:    "존재론적 논증의 핵심 텍스트. 중세 논증 스타일을 짧게 체험.",
		AltTitles: []string{"Proslogion", "프로슬로기온/모놀로기온"},
	},
	{
		Subject: model.SubjectAnselm, Step: 1, Title: "모놀로기온", Author: "안셀무스", Role: model.RoleIntroduction,
		Reason:    "하나의 원리로 신을 사유하려는 시도. 논증 흐름 연습에 좋음.",
		AltTitles: []string{"Monologion"},
	},
	{
		Subject: model.SubjectAnselm, Step: 2, Title: "왜 신이 인간이 되었는가", Author: "안셀무스", Role: model.RoleCore,
		Reason:    "속죄/구원 논의의 고전. 신학이 철학적 논증으로 전개되는 방식을 보여줌.",
		AltTitles: []string{"Cur Deus Homo", "왜 신이 사람이 되었는가"},
	},
	{
		Subject: model.SubjectAnselm, Step: 3, Title: "안셀무스 선집", Author: "안셀무스", Role: model.RoleAdvanced,
		Reason:    "논증 텍스트들을 묶어 읽으면 스콜라 논리 문법이 빠르게 잡힘.",
		AltTitles: []string{"Anselm", "안셀무스"},
	},

	// Aquinas
	{
		Subject: model.SubjectAquinas, Step: 1, Title: "토마스 아퀴나스 입문", Author: "토마스 아퀴나스", Role: model.RoleIntroduction,
		Reason:    "신학대전 완독은 부담이 크므로, 먼저 핵심 개념 지도를 확보.",
		AltTitles: []string{"아퀴나스 입문", "Aquinas introduction", "토마스 아퀴나스"},
	},
	{
		Subject: model.SubjectAquinas, Step: 2, Title: "신학대전", Author: "토마스 아퀴나스", Role: model.RoleCore,
		Reason:    "중세 스콜라의 정점. 발췌/해설과 함께 읽는 것을 전제한 핵심 본문.",
		AltTitles: []string{"Summa Theologiae", "신학대전(발췌)", "토마스 아퀴나스 신학대전"},
	},
	{
		Subject: model.SubjectAquinas, Step: 2, Title: "존재와 본질에 대하여", Author: "토마스 아퀴나스", Role: model.RoleCore,
		Reason:    "형이상학의 핵심 논점(존재/본질)을 짧게 압축해 다루는 대표 텍스트.",
		AltTitles: []string{"De ente et essentia", "On Being and Essence"},
	},
	{
		Subject: model.SubjectAquinas, Step: 3, Title: "아리스토텔레스 주석", Author: "토마스 아퀴나스", Role: model.RoleAdvanced,
		Reason:    "아리스토텔레스 수용이 어떻게 스콜라로 재구성되는지 확인하는 고급 단계.",
		AltTitles: []string{"Commentary", "아퀴나스 주석", "Aquinas commentary"},
	},

	// Boethius
	{
		Subject: model.SubjectBoethius, Step: 1, Title: "철학의 위안", Author: "보에티우스", Role: model.RoleIntroduction,
		Reason:    "고대에서 중세로 넘어가는 교량 텍스트. 운명·행복·선의 문제를 종합적으로 다룸.",
		AltTitles: []string{"Consolation of Philosophy", "The Consolation of Philosophy", "보에티우스 철학의 위안"},
	},
	{
		Subject: model.SubjectBoethius, Step: 2, Title: "신학 소논문집", Author: "보에티우스", Role: model.RoleCore,
		Reason:    "개념 정의와 논증 방식이 스콜라 문법으로 이어지는 지점을 확인.",
		AltTitles: []string{"Opuscula Sacra", "보에티우스 신학 소논문"},
	},

	// Avicenna
	{
		Subject: model.SubjectAvicenna, Step: 1, Title: "아비센나 입문", Author: "이븐 시나(아비센나)", Role: model.RoleIntroduction,
		Reason:    "이슬람 철학의 큰 지도를 먼저 잡고, 존재론 핵심 개념으로 들어가기 위한 진입로.",
		AltTitles: []string{"Avicenna introduction", "이븐 시나 입문", "아비센나"},
	},
	{
		Subject: model.SubjectAvicenna, Step: 2, Title: "치유의 서(형이상학)", Author: "이븐 시나(아비센나)", Role: model.RoleCore,
		Reason:    "필연/가능 존재, 본질/존재 구분 등 중세 존재론의 핵심 논점을 제공.",
		AltTitles: []string{"The Book of Healing", "al-Shifa", "샤파", "치유의 서"},
	},

	// Averroes
	{
		Subject: model.SubjectAverroes, Step: 1, Title: "아베로에스 입문", Author: "이븐 루시드(아베로에스)", Role: model.RoleIntroduction,
		Reason:    "아리스토텔레스 해석 전통을 이해하기 위한 진입. '이성'의 위상을 둘러싼 논쟁의 중심.",
		AltTitles: []string{"Averroes introduction", "이븐 루시드 입문", "아베로에스"},
	},
	{
		Subject: model.SubjectAverroes, Step: 2, Title: "아리스토텔레스 주석(선집)", Author: "이븐 루시드(아베로에스)", Role: model.RoleCore,
		Reason:    "고대 철학이 중세에서 어떻게 재구성되는지 가장 직접적으로 보여줌.",
		AltTitles: []string{"Commentary", "주석", "Averroes commentary"},
	},

	// Duns Scotus
	{
		Subject: model.SubjectDunsScotus, Step: 1, Title: "둔스 스코투스 입문", Author: "둔스 스코투스", Role: model.RoleIntroduction,
		Reason:    "스콜라 후반의 논점(개별성/형이상학)을 이해하기 위한 지도 확보.",
		AltTitles: []string{"Duns Scotus introduction", "스코투스 입문", "Scotus"},
	},
	{
		Subject: model.SubjectDunsScotus, Step: 2, Title: "형이상학에 관한 강해(선집)", Author: "둔스 스코투스", Role: model.RoleCore,
		Reason:    "존재 개념을 정교화하고, 후대 형이상학 논쟁의 한 축을 형성.",
		AltTitles: []string{"Ordinatio", "Reportatio", "Scotus metaphysics"},
	},

	// Ockham
	{
		Subject: model.SubjectOckham, Step: 1, Title: "오컴 입문", Author: "오컴", Role: model.RoleIntroduction,
		Reason:    "명목론과 방법론적 전환을 이해하기 위한 출발점.",
		AltTitles: []string{"Ockham introduction", "오컴의 면도날", "Ockham"},
	},
	{
		Subject: model.SubjectOckham, Step: 2, Title: "오컴 논리학(선집)", Author: "오컴", Role: model.RoleCore,
		Reason:    "보편자 논쟁의 결론부를 형성하는 핵심 논의.",
		AltTitles: []string{"Summa Logicae", "논리학 대전", "오컴 논리학"},
	},

	// Descartes
	{
		Subject: model.SubjectDescartes, Step: 1, Title: "방법서설", Author: "데카르트", Role: model.RoleIntroduction,
		Reason:    "근대 철학의 출발: 방법, 회의, 확실성의 기준을 가장 읽기 쉬운 형태로 제시.",
		AltTitles: []string{"Discourse on Method", "방법서설/성찰", "데카르트 방법서설"},
	},
	{
		Subject: model.SubjectDescartes, Step: 2, Title: "성찰", Author: "데카르트", Role: model.RoleCore,
		Reason:    "자아·신·세계에 대한 근대 인식론/형이상학의 핵심 논증이 전개됨.",
		AltTitles: []string{"Meditations", "Meditations on First Philosophy", "제1철학에 관한 성찰", "성찰(제1철학)"},
	},
	{
		Subject: model.SubjectDescartes, Step: 3, Title: "정념론", Author: "데카르트", Role: model.RoleAdvanced,
		Reason:    "심리·정서·몸-마음 관계를 다루며 근대 인간학으로 확장.",
		AltTitles: []string{"Passions of the Soul", "정념론/영혼의 정념"},
	},

	// Spinoza
	{
		Subject: model.SubjectSpinoza, Step: 1, Title: "스피노자 입문", Author: "스피노자", Role: model.RoleIntroduction,
		Reason:    "일원론·실체 개념과 기하학적 전개 방식을 읽기 전에 지도부터 확보.",
		AltTitles: []string{"Spinoza introduction", "스피노자 가이드", "스피노자"},
	},
	{
		Subject: model.SubjectSpinoza, Step: 2, Title: "윤리학", Author: "스피노자", Role: model.RoleCore,
		Reason:    "기하학적 방법으로 실체·정서·자유를 전개하는 대표 저작(난도 높음).",
		AltTitles: []string{"Ethics", "Ethica", "스피노자 윤리학"},
	},
	{
		Subject: model.SubjectSpinoza, Step: 3, Title: "신학정치론", Author: "스피노자", Role: model.RoleAdvanced,
		Reason:    "종교·성서 해석·정치 질서를 둘러싼 논쟁 텍스트로 사상 적용을 확장.",
		AltTitles: []string{"Theological-Political Treatise", "Tractatus Theologico-Politicus", "신학-정치론"},
	},

	// Locke
	{
		Subject: model.SubjectLocke, Step: 1, Title: "로크 입문", Author: "로크", Role: model.RoleIntroduction,
		Reason:    "경험론·인식론·정치철학의 큰 지도를 먼저 잡아 이후 원전 독해를 쉽게 함.",
		AltTitles: []string{"Locke introduction", "로크 가이드", "존 로크 입문"},
	},
	{
		Subject: model.SubjectLocke, Step: 2, Title: "인간 오성에 관한 시론", Author: "로크", Role: model.RoleCore,
		Reason:    "관념·지식·언어 등 경험론 인식론의 핵심 구조를 가장 체계적으로 제시.",
		AltTitles: []string{"An Essay Concerning Human Understanding", "Essay Concerning Human Understanding", "인간오성론"},
	},
	{
		Subject: model.SubjectLocke, Step: 3, Title: "정부론(통치론)", Author: "로크", Role: model.RoleAdvanced,
		Reason:    "자유·재산·정당한 권력의 근거를 다루는 근대 정치철학의 대표 고전.",
		AltTitles: []string{"Two Treatises of Government", "Second Treatise of Government", "통치론", "Two Treatises"},
	},

	// Leibniz
	{
		Subject: model.SubjectLeibniz, Step: 1, Title: "라이프니츠 입문", Author: "라이프니츠", Role: model.RoleIntroduction,
		Reason:    "단자론·합리론·형이상학 논점(실체/가능세계)을 읽기 전 지도 확보.",
		AltTitles: []string{"Leibniz introduction", "라이프니츠 가이드", "라이프니츠"},
	},
	{
		Subject: model.SubjectLeibniz, Step: 2, Title: "단자론", Author: "라이프니츠", Role: model.RoleCore,
		Reason:    "라이프니츠 형이상학의 핵심(단자·조화·표상)을 가장 압축적으로 제시하는 텍스트.",
		AltTitles: []string{"Monadology", "모나돌로지", "단자론/형이상학 서설"},
	},
	{
		Subject: model.SubjectLeibniz, Step: 3, Title: "신정론", Author: "라이프니츠", Role: model.RoleAdvanced,
		Reason:    "악·자유·최선의 가능세계 논의를 통해 단자론의 적용과 논쟁점을 깊게 이해.",
		AltTitles: []string{"Theodicy", "Essays on the Goodness of God", "라이프니츠 신정론"},
	},

	// Hume
	{
		Subject: model.SubjectHume, Step: 1, Title: "흄 입문", Author: "흄", Role: model.RoleIntroduction,
		Reason:    "인과·자아·귀납 문제로 이어지는 핵심 논점을 먼저 정리.",
		AltTitles: []string{"Hume introduction", "흄 가이드", "흄"},
	},
	{
		Subject: model.SubjectHume, Step: 2, Title: "인간 본성에 관한 논고", Author: "흄", Role: model.RoleCore,
		Reason:    "흄 경험론의 정점. 길고 난해하지만 전체 체계를 가장 직접적으로 제시.",
		AltTitles: []string{"A Treatise of Human Nature", "Treatise", "인성론"},
	},
	{
		Subject: model.SubjectHume, Step: 3, Title: "인간 지성에 관한 탐구", Author: "흄", Role: model.RoleAdvanced,
		Reason:    "논고를 압축/개정한 형태로 핵심 논증을 빠르게 복습·정리 가능.",
		AltTitles: []string{"An Enquiry Concerning Human Understanding", "Enquiry", "탐구"},
	},

	// Rousseau
	{
		Subject: model.SubjectRousseau, Step: 1, Title: "루소 입문", Author: "루소", Role: model.RoleIntroduction,
		Reason:    "근대 정치철학의 문제의식(자연상태/시민/불평등)을 지도부터 잡기.",
		AltTitles: []string{"Rousseau introduction", "루소 가이드", "루소"},
	},
	{
		Subject: model.SubjectRousseau, Step: 2, Title: "사회계약론", Author: "루소", Role: model.RoleCore,
		Reason:    "정치적 정당성의 근거를 '일반의지'로 세우는 대표 저작.",
		AltTitles: []string{"The Social Contract", "Social Contract", "사회 계약론"},
	},
	{
		Subject: model.SubjectRousseau, Step: 3, Title: "에밀", Author: "루소", Role: model.RoleAdvanced,
		Reason:    "교육·인간 형성의 관점에서 루소의 정치/도덕 철학을 확장.",
		AltTitles: []string{"Emile", "Émile", "에밀(교육론)"},
	},

	// Kant
	{
		Subject: model.SubjectKant, Step: 1, Title: "칸트 입문", Author: "칸트", Role: model.RoleIntroduction,
		Reason:    "비판철학의 용어(선험, 범주, 현상/물자체)를 먼저 정리.",
		AltTitles: []string{"Kant introduction", "칸트 가이드", "칸트"},
	},
	{
		Subject: model.SubjectKant, Step: 2, Title: "순수이성비판", Author: "칸트", Role: model.RoleCore,
		Reason:    "근대 인식론의 전환점. 난도 높으므로 해설/강의와 병행 추천.",
		AltTitles: []string{"Critique of Pure Reason", "CPR", "순수 이성 비판"},
	},
	{
		Subject: model.SubjectKant, Step: 3, Title: "실천이성비판", Author: "칸트", Role: model.RoleAdvanced,
		Reason:    "도덕·자유·실천 이성을 통해 비판철학의 두 축(인식/윤리)을 완성.",
		AltTitles: []string{"Critique of Practical Reason", "실천 이성 비판"},
	},

	// Marx
	{
		Subject: model.SubjectMarx, Step: 1, Title: "마르크스 입문", Author: "마르크스", Role: model.RoleIntroduction,
		Reason:    "역사유물론·자본주의 분석의 문제의식을 먼저 잡고 들어가기 위한 지침서.",
		AltTitles: []string{"Marx introduction", "마르크스 가이드", "마르크스"},
	},
	{
		Subject: model.SubjectMarx, Step: 2, Title: "공산당 선언", Author: "마르크스", Role: model.RoleCore,
		Reason:    "짧지만 핵심이 집약된 정치적 텍스트. 이후 저작들의 문제의식을 선명히 함.",
		AltTitles: []string{"Communist Manifesto", "Manifesto", "공산당 선언문"},
	},
	{
		Subject: model.SubjectMarx, Step: 3, Title: "자본", Author: "마르크스", Role: model.RoleAdvanced,
		Reason:    "정치경제학 비판의 본체. 방대하므로 해설/강의 병행 권장.",
		AltTitles: []string{"Capital", "Das Kapital", "자본론"},
	},

	// Hegel
	{
		Subject: model.SubjectHegel, Step: 1, Title: "헤겔 입문", Author: "헤겔", Role: model.RoleIntroduction,
		Reason:    "변증법·정신·역사 개념을 지도처럼 먼저 잡아야 원전에서 길을 잃지 않음.",
		AltTitles: []string{"Hegel introduction", "헤겔 가이드", "헤겔"},
	},
	{
		Subject: model.SubjectHegel, Step: 2, Title: "정신현상학", Author: "헤겔", Role: model.RoleCore,
		Reason:    "의식의 전개를 따라가며 변증법의 '작동 방식'을 가장 강하게 체감하는 대표 저작.",
		AltTitles: []string{"Phenomenology of Spirit", "Phenomenology of Mind", "정신 현상학"},
	},
	{
		Subject: model.SubjectHegel, Step: 3, Title: "법철학", Author: "헤겔", Role: model.RoleAdvanced,
		Reason:    "윤리·국가·자유 개념이 제도/역사와 결합되는 지점까지 확장해 이해를 완성.",
		AltTitles: []string{"Elements of the Philosophy of Right", "Philosophy of Right", "법철학 강요"},
	},

	// Nietzsche
	{
		Subject: model.SubjectNietzsche, Step: 1, Title: "니체 입문", Author: "니체", Role: model.RoleIntroduction,
		Reason:    "힘/가치/도덕 비판의 핵심 문제의식을 먼저 정리하면 원전이 훨씬 선명해짐.",
		AltTitles: []string{"Nietzsche introduction", "니체 가이드", "니체"},
	},
	{
		Subject: model.SubjectNietzsche, Step: 2, Title: "선악의 저편", Author: "니체", Role: model.RoleCore,
		Reason:    "도덕·진리·철학 자체를 겨냥한 비판이 압축적으로 전개되는 핵심 텍스트.",
		AltTitles: []string{"Beyond Good and Evil", "BGE", "선악의 저편/도덕의 계보"},
	},
	{
		Subject: model.SubjectNietzsche, Step: 3, Title: "도덕의 계보", Author: "니체", Role: model.RoleAdvanced,
		Reason:    "가치의 기원과 도덕 감정의 형성을 '계보학'으로 해부해 니체 사유를 깊게 고정.",
		AltTitles: []string{"On the Genealogy of Morality", "Genealogy of Morals", "도덕 계보학"},
	},

	// Kierkegaard
	{
		Subject: model.SubjectKierkegaard, Step: 1, Title: "키르케고르 입문", Author: "키르케고르", Role: model.RoleIntroduction,
		Reason:    "실존·불안·신앙의 핵심 테마와 문체를 먼저 이해하면 원전 난도가 크게 내려감.",
		AltTitles: []string{"Kierkegaard introduction", "키르케고르 가이드", "키르케고르"},
	},
	{
		Subject: model.SubjectKierkegaard, Step: 2, Title: "불안의 개념", Author: "키르케고르", Role: model.RoleCore,
		Reason:    "불안·자유·가능성 개념을 통해 실존철학의 문제 구도를 가장 잘 잡아줌.",
		AltTitles: []string{"The Concept of Anxiety", "불안 개념", "불안의 개념(개정)"},
	},
	{
		Subject: model.SubjectKierkegaard, Step: 3, Title: "죽음에 이르는 병", Author: "키르케고르", Role: model.RoleAdvanced,
		Reason:    "절망 분석을 통해 '자기'와 '신앙'의 관계를 가장 정교하게 파고드는 대표 저작.",
		AltTitles: []string{"The Sickness Unto Death", "Sickness Unto Death", "죽음에 이르는 병(절망)"},
	},
}
