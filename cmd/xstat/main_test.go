package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Xuerui-Yang/xuerui-stat/tree"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const trainingCSV = `x,flat,label
1,0,A
2,0,A
3,0,B
4,0,B
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cliParser()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String(), errOut.String()
}

func TestVersion(t *testing.T) {
	out, _ := run(t, "version")
	assert.Equal(t, "xstat v0.1.0\n", out)
}

func TestTreeCommand(t *testing.T) {
	input := writeFile(t, "train.csv", trainingCSV)
	test := writeFile(t, "test.csv", "label,x,flat\nB,10,0\nA,0,0\nA,3,0\n")
	out, _ := run(t, "tree", "-i", input, "-l", "label", "-t", test, "--seed", "1")

	assert.Contains(t, out, "tree of depth 1 with 2 leaves\n")
	assert.Contains(t, out, "{ x < 2.5 }\n|\n|__[A]\n|__[B]\n")
	assert.Contains(t, out, "training error: 0.000000\n")
	assert.Contains(t, out, "test error: 0.333333\n")
}

func TestTreeCommandPredictions(t *testing.T) {
	input := writeFile(t, "train.csv", trainingCSV)
	predict := writeFile(t, "predict.csv", "x,flat\n0,5\n9,5\n")
	out, errOut := run(t, "tree", "-i", input, "-l", "label", "-p", predict)

	assert.Equal(t, "x,flat,label\n0,5,A\n9,5,B\n", out)
	assert.Contains(t, errOut, "training error")
}

func TestForestCommand(t *testing.T) {
	input := writeFile(t, "train.csv", trainingCSV)
	cfg := writeFile(t, "forest.yml", "label: label\nseed: 3\nforest:\n  trees: 5\n")
	out, _ := run(t, "forest", "-i", input, "-c", cfg, "--subfeatures", "1")

	assert.Contains(t, out, "forest of 5 trees with 1 features per split\n")
	assert.Contains(t, out, "out-of-bag error:")
	assert.Contains(t, out, "training error:")
}

func TestTrainingConfigFlagsOverrideFile(t *testing.T) {
	cfg := writeFile(t, "train.yml", "label: species\nseed: 9\ntree:\n  max_depth: 4\nforest:\n  trees: 10\n  max_depth: 6\n")
	tcc := &trainCmdConfig{rootCmdConfig: &rootCmdConfig{logger: zaptest.NewLogger(t)}}
	cmd := &cobra.Command{}
	tcc.addFlags(cmd)
	cmd.Flags().IntVarP(&(tcc.trees), "trees", "n", 100, "")
	cmd.Flags().IntVar(&(tcc.subfeatures), "subfeatures", 0, "")
	require.NoError(t, cmd.ParseFlags([]string{"-c", cfg, "--max-depth", "2", "-n", "3"}))

	c, err := tcc.trainingConfig(cmd, true)
	require.NoError(t, err)
	assert.Equal(t, "species", c.Label)
	assert.Equal(t, int64(9), *c.Seed)
	assert.Equal(t, 4, c.Tree.MaxDepth)
	assert.Equal(t, 2, c.Forest.MaxDepth)
	assert.Equal(t, 3, c.Forest.Trees)

	c, err = tcc.trainingConfig(cmd, false)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Tree.MaxDepth)
	assert.Equal(t, 6, c.Forest.MaxDepth)
}

func TestTrainingConfigRequiresLabel(t *testing.T) {
	tcc := &trainCmdConfig{rootCmdConfig: &rootCmdConfig{logger: zaptest.NewLogger(t)}}
	cmd := &cobra.Command{}
	tcc.addFlags(cmd)
	require.NoError(t, cmd.ParseFlags(nil))
	_, err := tcc.trainingConfig(cmd, false)
	assert.Error(t, err)
}

func TestTrainingConfigRejectsInvalidFlags(t *testing.T) {
	tcc := &trainCmdConfig{rootCmdConfig: &rootCmdConfig{logger: zaptest.NewLogger(t)}}
	cmd := &cobra.Command{}
	tcc.addFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"-l", "y", "--min-gini", "3"}))
	c, err := tcc.trainingConfig(cmd, false)
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestPrintConfusionMatrix(t *testing.T) {
	color.NoColor = true
	cm := tree.NewConfusionMatrix([]string{"A", "B"})
	cm.Add(0, 0)
	cm.Add(1, 0)
	cm.Add(1, 1)
	var buf bytes.Buffer
	printConfusionMatrix(&buf, cm)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"A", "B"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"A", "1", "0"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"B", "1", "1"}, strings.Fields(lines[2]))
}
