// Package sweep generates SLURM job-array submission scripts that sweep
// parameters over the Cartesian product of their value lists.
//
// Each array task maps its SLURM_ARRAY_TASK_ID to one parameter
// combination by repeated modulo/divide decomposition in bash, so a single
// submission covers every combination. The generated script sources the
// project's prep.sh and exposes one bash variable per parameter.
package sweep

import (
	"fmt"
	"strings"
	"text/template"
)

// Param declares one swept parameter: the bash variable name it creates in
// the script and the values it runs through. The first parameter in the
// sweep order changes fastest across consecutive task IDs.
type Param struct {
	Name   string
	Values Values
}

// Values is a finite sequence of parameter values.
type Values interface {
	// Len returns the number of values.
	Len() int
	// bash renders the bash array initializer for the values.
	bash() string
}

// List is an explicit value list. Elements render with fmt.Sprint, so
// ints, floats and strings all work.
type List []any

// Len returns the number of values.
func (l List) Len() int { return len(l) }

func (l List) bash() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = fmt.Sprint(v)
	}
	return "( " + strings.Join(parts, " ") + " )"
}

// Span is a half-open arithmetic progression [Start, Stop) with the given
// Step, rendered as a bash seq call.
type Span struct {
	Start, Stop, Step int
}

// Len returns the number of values in the span.
func (s Span) Len() int {
	if s.Step > 0 && s.Stop > s.Start {
		return (s.Stop - s.Start + s.Step - 1) / s.Step
	}
	if s.Step < 0 && s.Stop < s.Start {
		return (s.Start - s.Stop - s.Step - 1) / -s.Step
	}
	return 0
}

func (s Span) bash() string {
	last := s.Start + (s.Len()-1)*s.Step
	return fmt.Sprintf("($( seq %d %d %d ))", s.Start, s.Step, last)
}

// defaultFields are the SLURM fields assumed when not overridden.
var defaultFields = map[string]any{
	"memory":      64,
	"memory_unit": "GB",
	"num_nodes":   1,
	"num_cpus":    16,
	"time_d":      0,
	"time_h":      0,
	"time_m":      0,
	"time_s":      0,
	"reserve":     "nqit",
	"job_name":    "myjob",
	"output":      "output.txt",
}

// scriptTemplate is the whole submission script. num_jobs, param_arr_init,
// param_val_assign and param_list are computed; the rest come from fields.
const scriptTemplate = `#!/bin/env bash

#SBATCH --array=0-{{.num_jobs}}
#SBATCH --job-name={{.job_name}}
#SBATCH --output={{.output}}
#SBATCH --mem={{.memory}}{{.memory_unit}}
#SBATCH --time={{.time_d}}-{{.time_h}}:{{.time_m}}:{{.time_s}}
#SBATCH --nodes={{.num_nodes}}
#SBATCH --cpus-per-task={{.num_cpus}}
#SBATCH --reservation={{.reserve}}

{{.param_arr_init}}

trial=${SLURM_ARRAY_TASK_ID}
{{.param_val_assign}}

source ../../prep.sh
export OMP_NUM_THREADS={{.num_cpus}}
export OMP_PROC_BIND=spread

## use {{.param_list}} below
`

var scriptTmpl = template.Must(template.New("script").Parse(scriptTemplate))

// templateFields is every placeholder that may be overridden via fields.
var templateFields = func() map[string]struct{} {
	names := []string{
		"num_jobs", "job_name", "output", "memory", "memory_unit",
		"time_d", "time_h", "time_m", "time_s",
		"num_nodes", "num_cpus", "reserve",
		"param_arr_init", "param_val_assign", "param_list",
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}()

// Script builds a submission script sweeping params. fields overrides the
// default SLURM fields; a field with no placeholder in the template is an
// error. order lists all parameter names and controls sweep order (the
// last one changes every task); nil means declaration order.
func Script(fields map[string]any, params []Param, order []string) (string, error) {
	if len(params) == 0 {
		return "", fmt.Errorf("sweep: no parameters to sweep")
	}
	for field := range fields {
		if _, ok := templateFields[field]; !ok {
			return "", fmt.Errorf("sweep: field %q unused in template", field)
		}
	}

	byName := make(map[string]Param, len(params))
	for _, p := range params {
		if p.Name == "" {
			return "", fmt.Errorf("sweep: parameter with empty name")
		}
		if _, dup := byName[p.Name]; dup {
			return "", fmt.Errorf("sweep: duplicate parameter %q", p.Name)
		}
		if p.Values == nil || p.Values.Len() == 0 {
			return "", fmt.Errorf("sweep: parameter %q has no values", p.Name)
		}
		byName[p.Name] = p
	}

	if order == nil {
		order = make([]string, len(params))
		for i, p := range params {
			order[i] = p.Name
		}
	} else {
		if err := checkOrder(order, byName); err != nil {
			return "", err
		}
	}

	// SLURM array ranges are inclusive, hence the -1.
	numJobs := 1
	for _, p := range params {
		numJobs *= p.Values.Len()
	}
	numJobs--

	initLines, assignLines := paramsBash(order, byName)

	data := map[string]any{
		"num_jobs":         numJobs,
		"param_arr_init":   strings.Join(initLines, "\n"),
		"param_val_assign": strings.Join(assignLines, "\n"),
		"param_list":       paramList(order),
	}
	for key, val := range defaultFields {
		data[key] = val
	}
	for key, val := range fields {
		data[key] = val
	}

	var buf strings.Builder
	if err := scriptTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("sweep: failed to render script: %w", err)
	}
	return buf.String(), nil
}

func checkOrder(order []string, byName map[string]Param) error {
	seen := make(map[string]struct{}, len(order))
	for _, name := range order {
		if _, ok := byName[name]; !ok {
			return fmt.Errorf("sweep: order names unknown parameter %q", name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("sweep: order repeats parameter %q", name)
		}
		seen[name] = struct{}{}
	}
	if len(order) != len(byName) {
		var missing []string
		for name := range byName {
			if _, ok := seen[name]; !ok {
				missing = append(missing, name)
			}
		}
		return fmt.Errorf("sweep: order omits parameters %s", strings.Join(missing, ", "))
	}
	return nil
}

// paramsBash builds the array initializer lines and the modulo/divide
// decomposition of the trial index, one assign+increment pair per
// parameter. The final increment is superfluous and dropped.
func paramsBash(order []string, byName map[string]Param) (initLines, assignLines []string) {
	for _, name := range order {
		p := byName[name]
		arr := name + "_values"
		initLines = append(initLines, fmt.Sprintf("%s=%s", arr, p.Values.bash()))
		assignLines = append(assignLines,
			fmt.Sprintf("%s=${%s[$(( trial %% ${#%s[@]} ))]}", name, arr, arr),
			fmt.Sprintf("trial=$(( trial / ${#%s[@]} ))", arr),
		)
	}
	assignLines = assignLines[:len(assignLines)-1]
	return initLines, assignLines
}

func paramList(order []string) string {
	parts := make([]string, len(order))
	for i, name := range order {
		parts[i] = "${" + name + "}"
	}
	return strings.Join(parts, ", ")
}
