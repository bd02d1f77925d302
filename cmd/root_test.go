package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerrychoi/bookroad/internal/model"
	"github.com/jerrychoi/bookroad/pkg/aladin"
)

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"roadmap", "search", "proxy", "cache", "favorites", "progress"} {
		assert.True(t, names[want], "command %s not registered", want)
	}
}

func newBufferedCommand() (*cobra.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	c := &cobra.Command{}
	c.SetOut(buf)
	return c, buf
}

func TestListSubjectsGroupsByEra(t *testing.T) {
	c, buf := newBufferedCommand()
	require.NoError(t, listSubjects(c))

	out := buf.String()
	assert.Contains(t, out, "고대 철학")
	assert.Contains(t, out, "중세 철학")
	assert.Contains(t, out, "플라톤")
	assert.Contains(t, out, "kierkegaard")
}

func TestPrintSnapshotMarksMatches(t *testing.T) {
	c, buf := newBufferedCommand()

	snap := &model.Snapshot{Subject: model.SubjectPlato}
	snap.Curated[1] = []model.ResolvedBook{
		{
			Curated: model.CuratedBook{Subject: model.SubjectPlato, Step: 2, Title: "국가", Author: "플라톤", Role: model.RoleCore},
			Matched: &aladin.Book{Title: "국가", Author: "플라톤", ISBN13: "9788937460494"},
		},
		{
			Curated: model.CuratedBook{Subject: model.SubjectPlato, Step: 2, Title: "향연", Author: "플라톤", Role: model.RoleCore},
		},
	}
	snap.Extended[0] = []aladin.Book{{Title: "소크라테스 익스프레스", Author: "에릭 와이너"}}

	printSnapshot(c, snap)

	out := buf.String()
	assert.Contains(t, out, "* 국가")
	assert.Contains(t, out, "[9788937460494]")
	assert.Contains(t, out, "  향연")
	assert.Contains(t, out, "확장 읽기")
	assert.Contains(t, out, "소크라테스 익스프레스")
}
