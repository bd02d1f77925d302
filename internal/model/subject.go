// Package model holds the shared domain types: subjects, curated
// entries, resolved books and the published roadmap snapshot.
package model

import (
	"sort"

	"github.com/rotisserie/eris"
)

// StepCount is the fixed number of reading steps per subject.
const StepCount = 3

// Era groups subjects for display.
type Era string

const (
	EraAncient    Era = "고대 철학"
	EraMedieval   Era = "중세 철학"
	EraModern     Era = "근대 철학"
	EraNineteenth Era = "19세기 철학"
)

// Subject identifies one curated reading roadmap.
type Subject string

const (
	SubjectPlato       Subject = "plato"
	SubjectAristotle   Subject = "aristotle"
	SubjectAugustine   Subject = "augustine"
	SubjectAnselm      Subject = "anselm"
	SubjectAquinas     Subject = "aquinas"
	SubjectAvicenna    Subject = "avicenna"
	SubjectAverroes    Subject = "averroes"
	SubjectBoethius    Subject = "boethius"
	SubjectDunsScotus  Subject = "duns-scotus"
	SubjectOckham      Subject = "ockham"
	SubjectDescartes   Subject = "descartes"
	SubjectSpinoza     Subject = "spinoza"
	SubjectLocke       Subject = "locke"
	SubjectLeibniz     Subject = "leibniz"
	SubjectHume        Subject = "hume"
	SubjectRousseau    Subject = "rousseau"
	SubjectKant        Subject = "kant"
	SubjectMarx        Subject = "marx"
	SubjectHegel       Subject = "hegel"
	SubjectNietzsche   Subject = "nietzsche"
	SubjectKierkegaard Subject = "kierkegaard"
)

// SubjectInfo is the static description of one subject.
type SubjectInfo struct {
	ID    Subject
	Name  string // canonical Korean author name, also the author query
	Era   Era
	Blurb string
	// FilterTokens decide subject relevance for extended (bestseller)
	// recommendations; matched case-insensitively as substrings.
	FilterTokens []string
}

var subjects = map[Subject]SubjectInfo{
	SubjectPlato: {
		ID: SubjectPlato, Name: "플라톤", Era: EraAncient,
		Blurb:        "이데아·국가·대화편",
		FilterTokens: []string{"플라톤", "plato", "소크라테스", "socrates"},
	},
	SubjectAristotle: {
		ID: SubjectAristotle, Name: "아리스토텔레스", Era: EraAncient,
		Blurb:        "논리·윤리·형이상학",
		FilterTokens: []string{"아리스토텔레스", "aristotle", "오르가논", "니코마코스"},
	},
	SubjectAugustine: {
		ID: SubjectAugustine, Name: "아우구스티누스", Era: EraMedieval,
		Blurb:        "내면·신학·자유의지",
		FilterTokens: []string{"아우구스티누스", "augustine"},
	},
	SubjectAnselm: {
		ID: SubjectAnselm, Name: "안셀무스", Era: EraMedieval,
		Blurb:        "신 존재 논증·스콜라 초기",
		FilterTokens: []string{"안셀무스", "anselm"},
	},
	SubjectAquinas: {
		ID: SubjectAquinas, Name: "토마스 아퀴나스", Era: EraMedieval,
		Blurb:        "스콜라 정점·신학대전",
		FilterTokens: []string{"아퀴나스", "토마스", "thomas aquinas", "aquinas"},
	},
	SubjectAvicenna: {
		ID: SubjectAvicenna, Name: "이븐 시나(아비센나)", Era: EraMedieval,
		Blurb:        "이슬람 철학·존재론",
		FilterTokens: []string{"이븐 시나", "아비센나", "avicenna", "ibn sina"},
	},
	SubjectAverroes: {
		ID: SubjectAverroes, Name: "이븐 루시드(아베로에스)", Era: EraMedieval,
		Blurb:        "아리스토텔레스 주석·이성",
		FilterTokens: []string{"이븐 루시드", "아베로에스", "averroes", "ibn rushd"},
	},
	SubjectBoethius: {
		ID: SubjectBoethius, Name: "보에티우스", Era: EraMedieval,
		Blurb:        "고대-중세 교량",
		FilterTokens: []string{"보에티우스", "boethius"},
	},
	SubjectDunsScotus: {
		ID: SubjectDunsScotus, Name: "둔스 스코투스", Era: EraMedieval,
		Blurb:        "형이상학·개별성",
		FilterTokens: []string{"둔스 스코투스", "scotus", "duns scotus"},
	},
	SubjectOckham: {
		ID: SubjectOckham, Name: "오컴", Era: EraMedieval,
		Blurb:        "명목론·방법의 전환",
		FilterTokens: []string{"오컴", "ockham", "오컴의 면도날"},
	},
	SubjectDescartes: {
		ID: SubjectDescartes, Name: "데카르트", Era: EraModern,
		Blurb:        "방법·자아·근대의 시작",
		FilterTokens: []string{"데카르트", "descartes", "cartes"},
	},
	SubjectSpinoza: {
		ID: SubjectSpinoza, Name: "스피노자", Era: EraModern,
		Blurb:        "일원론·윤리학",
		FilterTokens: []string{"스피노자", "spinoza"},
	},
	SubjectLocke: {
		ID: SubjectLocke, Name: "로크", Era: EraModern,
		Blurb:        "경험론·정치철학",
		FilterTokens: []string{"로크", "locke"},
	},
	SubjectLeibniz: {
		ID: SubjectLeibniz, Name: "라이프니츠", Era: EraModern,
		Blurb:        "단자론·합리론",
		FilterTokens: []string{"라이프니츠", "leibniz"},
	},
	SubjectHume: {
		ID: SubjectHume, Name: "흄", Era: EraModern,
		Blurb:        "회의론·경험론 정점",
		FilterTokens: []string{"흄", "hume"},
	},
	SubjectRousseau: {
		ID: SubjectRousseau, Name: "루소", Era: EraModern,
		Blurb:        "사회계약·근대 정치",
		FilterTokens: []string{"루소", "rousseau"},
	},
	SubjectKant: {
		ID: SubjectKant, Name: "칸트", Era: EraModern,
		Blurb:        "비판철학·인식론",
		FilterTokens: []string{"칸트", "kant"},
	},
	SubjectMarx: {
		ID: SubjectMarx, Name: "마르크스", Era: EraNineteenth,
		Blurb:        "역사유물론·자본",
		FilterTokens: []string{"마르크스", "marx"},
	},
	SubjectHegel: {
		ID: SubjectHegel, Name: "헤겔", Era: EraNineteenth,
		Blurb:        "변증법·정신",
		FilterTokens: []string{"헤겔", "hegel"},
	},
	SubjectNietzsche: {
		ID: SubjectNietzsche, Name: "니체", Era: EraNineteenth,
		Blurb:        "가치 전도·계보",
		FilterTokens: []string{"니체", "nietzsche"},
	},
	SubjectKierkegaard: {
		ID: SubjectKierkegaard, Name: "키르케고르", Era: EraNineteenth,
		Blurb:        "실존·주체성",
		FilterTokens: []string{"키르케고르", "kierkegaard"},
	},
}

// Info returns the static description for s.
func (s Subject) Info() (SubjectInfo, bool) {
	info, ok := subjects[s]
	return info, ok
}

// Name returns the canonical author name, or the raw id for an unknown
// subject.
func (s Subject) Name() string {
	if info, ok := subjects[s]; ok {
		return info.Name
	}
	return string(s)
}

// FilterTokens returns the relevance tokens for s (nil when unknown).
func (s Subject) FilterTokens() []string {
	return subjects[s].FilterTokens
}

// AllSubjects lists every subject in stable id order.
func AllSubjects() []SubjectInfo {
	out := make([]SubjectInfo, 0, len(subjects))
	for _, info := range subjects {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ParseSubject resolves a subject id or its Korean author name.
func ParseSubject(s string) (Subject, error) {
	if _, ok := subjects[Subject(s)]; ok {
		return Subject(s), nil
	}
	for id, info := range subjects {
		if info.Name == s {
			return id, nil
		}
	}
	return "", eris.Errorf("unknown subject %q", s)
}
