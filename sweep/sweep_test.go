package sweep

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantTwoParamScript = `#!/bin/env bash

#SBATCH --array=0-8
#SBATCH --job-name=myjob
#SBATCH --output=output.txt
#SBATCH --mem=64GB
#SBATCH --time=0-0:0:0
#SBATCH --nodes=1
#SBATCH --cpus-per-task=16
#SBATCH --reservation=nqit

a_values=( 1 2 3 )
b_values=($( seq 7 1 9 ))

trial=${SLURM_ARRAY_TASK_ID}
a=${a_values[$(( trial % ${#a_values[@]} ))]}
trial=$(( trial / ${#a_values[@]} ))
b=${b_values[$(( trial % ${#b_values[@]} ))]}

source ../../prep.sh
export OMP_NUM_THREADS=16
export OMP_PROC_BIND=spread

## use ${a}, ${b} below
`

func TestScript_Defaults(t *testing.T) {
	got, err := Script(nil, []Param{
		{Name: "a", Values: List{1, 2, 3}},
		{Name: "b", Values: Span{Start: 7, Stop: 10, Step: 1}},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, wantTwoParamScript, got)
}

func TestScript_FieldOverrides(t *testing.T) {
	got, err := Script(map[string]any{
		"memory":   8,
		"job_name": "abc_sweep",
		"time_h":   1,
	}, []Param{{Name: "a", Values: List{1, 2}}}, nil)
	require.NoError(t, err)

	assert.Contains(t, got, "#SBATCH --mem=8GB")
	assert.Contains(t, got, "#SBATCH --job-name=abc_sweep")
	assert.Contains(t, got, "#SBATCH --time=0-1:0:0")
	assert.Contains(t, got, "#SBATCH --array=0-1")
}

func TestScript_UnknownField(t *testing.T) {
	_, err := Script(map[string]any{"gpus": 2}, []Param{{Name: "a", Values: List{1}}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"gpus" unused in template`)
}

func TestScript_ExplicitOrder(t *testing.T) {
	params := []Param{
		{Name: "a", Values: Span{Stop: 10, Step: 1}},
		{Name: "b", Values: Span{Stop: 10, Step: 1}},
		{Name: "c", Values: Span{Stop: 10, Step: 1}},
	}
	got, err := Script(nil, params, []string{"c", "a", "b"})
	require.NoError(t, err)

	assert.Contains(t, got, "#SBATCH --array=0-999")
	assert.Contains(t, got, "## use ${c}, ${a}, ${b} below")

	// The assignment block must decompose in the requested order.
	cIdx := strings.Index(got, "c=${c_values")
	aIdx := strings.Index(got, "a=${a_values")
	bIdx := strings.Index(got, "b=${b_values")
	assert.True(t, cIdx < aIdx && aIdx < bIdx)
}

func TestScript_OrderValidation(t *testing.T) {
	params := []Param{
		{Name: "a", Values: List{1}},
		{Name: "b", Values: List{2}},
	}

	_, err := Script(nil, params, []string{"a"})
	assert.ErrorContains(t, err, "omits")

	_, err = Script(nil, params, []string{"a", "b", "z"})
	assert.ErrorContains(t, err, "unknown parameter")

	_, err = Script(nil, params, []string{"a", "a"})
	assert.ErrorContains(t, err, "repeats")
}

func TestScript_EmptyParams(t *testing.T) {
	_, err := Script(nil, nil, nil)
	assert.Error(t, err)

	_, err = Script(nil, []Param{{Name: "a", Values: List{}}}, nil)
	assert.ErrorContains(t, err, "no values")
}

func TestSpan(t *testing.T) {
	tests := []struct {
		span Span
		len  int
		bash string
	}{
		{Span{Start: 7, Stop: 10, Step: 1}, 3, "($( seq 7 1 9 ))"},
		{Span{Start: 0, Stop: 10, Step: 1}, 10, "($( seq 0 1 9 ))"},
		{Span{Start: 0, Stop: 10, Step: 3}, 4, "($( seq 0 3 9 ))"},
		{Span{Start: 10, Stop: 0, Step: -2}, 5, "($( seq 10 -2 2 ))"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.len, tt.span.Len(), tt.bash)
		assert.Equal(t, tt.bash, tt.span.bash())
	}

	assert.Equal(t, 0, Span{Start: 0, Stop: 10, Step: 0}.Len())
	assert.Equal(t, 0, Span{Start: 10, Stop: 0, Step: 1}.Len())
}

func TestList(t *testing.T) {
	assert.Equal(t, "( 1 0.5 fast )", List{1, 0.5, "fast"}.bash())
	assert.Equal(t, 3, List{1, 0.5, "fast"}.Len())
}

func TestWriteScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs", "submit.sh")
	err := WriteScript(context.Background(), path, nil, []Param{
		{Name: "a", Values: List{1, 2, 3}},
		{Name: "b", Values: Span{Start: 7, Stop: 10, Step: 1}},
	}, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, wantTwoParamScript, string(data))
}

func TestWriteScript_InvalidSweepWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submit.sh")
	err := WriteScript(context.Background(), path, nil, nil, nil)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
