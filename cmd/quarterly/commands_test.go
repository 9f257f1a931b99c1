package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"series", "--id", "Inflow"})
	cmd.SetIn(strings.NewReader(`[
		{"date": "2024-01-15", "value": 100},
		{"date": "2024-02-20", "value": "200"},
		{"date": "2024-04-10", "value": 300},
		{"date": "garbage", "value": 5}
	]`))
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, `{"id":"Inflow","data":[{"x":"Q1 2024","y":150},{"x":"Q2 2024","y":300}]}`, out.String())
}

func TestMergeCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id": "Inflow", "data": [{"x": "Q1 2024", "y": 150}]},
		{"id": "Outflow", "data": [{"x": "Q4 2023", "y": 80}]}
	]`), 0o600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"merge", "--file", path})
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, `[
		{"quarter":"Q4 2023","Inflow":0,"Outflow":80},
		{"quarter":"Q1 2024","Inflow":150,"Outflow":0}
	]`, out.String())
}

func TestCommandErrors(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"series"})
	cmd.SetIn(strings.NewReader(`{not json`))
	cmd.SetOut(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetArgs([]string{"merge", "--file", filepath.Join(t.TempDir(), "missing.json")})
	cmd.SetOut(&bytes.Buffer{})
	assert.ErrorContains(t, cmd.Execute(), "打开文件失败")
}
