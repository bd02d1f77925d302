package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Republic", "republic"},
		{"spaces deleted", "플라톤 국가", "플라톤국가"},
		{"middle dot deleted", "국가·향연", "국가향연"},
		{"colon deleted", "성찰: 제1철학", "성찰제1철학"},
		{"dashes deleted", "신학—정치론-서간", "신학정치론서간"},
		{"parens deleted", "국가(共和國)", "국가共和國"},
		{"empty", "", ""},
		{"mixed latin", "The Consolation of Philosophy", "theconsolationofphilosophy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestFoldIdempotent(t *testing.T) {
	inputs := []string{
		"플라톤 국가",
		"Meditations on First Philosophy",
		"니코마코스 윤리학(개정판)",
		"  — · : ( ) -  ",
		"",
	}
	for _, in := range inputs {
		once := Fold(in)
		assert.Equal(t, once, Fold(once), "Fold must be idempotent for %q", in)
	}
}
