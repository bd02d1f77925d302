package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jerrychoi/bookroad/internal/model"
	"github.com/jerrychoi/bookroad/pkg/aladin"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		subject model.Subject
		book    aladin.Book
		want    int
	}{
		{
			name:    "metaphysics keyword lands in the advanced step",
			subject: model.SubjectAristotle,
			book:    aladin.Book{Title: "형이상학", Author: "아리스토텔레스"},
			want:    2,
		},
		{
			name:    "ethics keyword lands in the first step",
			subject: model.SubjectAristotle,
			book:    aladin.Book{Title: "니코마코스 윤리학 강독", Author: "아리스토텔레스"},
			want:    0,
		},
		{
			name:    "core dialogue keyword lands in the middle step",
			subject: model.SubjectPlato,
			book:    aladin.Book{Title: "국가를 읽다", Description: "플라톤의 정의론"},
			want:    1,
		},
		{
			name:    "no signal defaults to step zero",
			subject: model.SubjectPlato,
			book:    aladin.Book{},
			want:    0,
		},
		{
			name:    "tie resolves to the earliest step",
			subject: model.SubjectPlato,
			book:    aladin.Book{Title: "입문자를 위한 향연"},
			want:    0,
		},
		{
			name:    "relevance token alone keeps step zero",
			subject: model.SubjectKant,
			book:    aladin.Book{Title: "칸트와 산책", Description: "교양서"},
			want:    0,
		},
		{
			name:    "keyword in description counts",
			subject: model.SubjectHegel,
			book:    aladin.Book{Title: "독일 관념론", Description: "정신현상학을 중심으로"},
			want:    1,
		},
		{
			name:    "english keyword matches case-insensitively",
			subject: model.SubjectMarx,
			book:    aladin.Book{Title: "Das Kapital", Description: "Capital, critique of political economy"},
			want:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.book, tt.subject))
		})
	}
}

func TestClassifyEverySubjectHasThreeRules(t *testing.T) {
	for _, info := range model.AllSubjects() {
		rules := classifierRules[info.ID]
		assert.Len(t, rules, model.StepCount, "subject %s", info.ID)
		for _, r := range rules {
			assert.GreaterOrEqual(t, r.step, 0)
			assert.Less(t, r.step, model.StepCount)
			assert.NotEmpty(t, r.keywords)
		}
	}
}
