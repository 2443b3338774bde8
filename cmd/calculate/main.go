// Interactive terminal calculator: prompts for a body profile and prints BMR,
// TDEE and a macronutrient split.
// Usage: go run ./cmd/calculate
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"lg/energy-estimator-go-api/internal/energy"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// session is one terminal form. last holds the most recent result until the
// next calculation replaces it or the user clears it.
type session struct {
	in   *bufio.Reader
	out  io.Writer
	last *energy.EnergyResult
}

// run calculates once, then loops on commands until quit or end of input.
func run(in io.Reader, out io.Writer) error {
	s := &session{in: bufio.NewReader(in), out: out}

	if err := s.calculate(); err != nil {
		return ignoreEOF(err)
	}
	for {
		cmd, err := s.prompt("\nCommand (calc, last, clear, quit) [calc]: ")
		if err != nil {
			return ignoreEOF(err)
		}
		switch strings.ToLower(cmd) {
		case "c", "calc", "calculate", "":
			if err := s.calculate(); err != nil {
				return ignoreEOF(err)
			}
		case "l", "last":
			if s.last == nil {
				fmt.Fprintln(s.out, "No result yet.")
			} else {
				render(s.out, *s.last)
			}
		case "clear":
			s.last = nil
			fmt.Fprintln(s.out, "Result cleared.")
		case "q", "quit", "exit":
			return nil
		default:
			fmt.Fprintf(s.out, "Unknown command %q.\n", cmd)
		}
	}
}

// calculate reads the whole form, then estimates and renders. The previous
// result is dropped first so an interrupted form never shows stale numbers.
func (s *session) calculate() error {
	s.last = nil

	p, err := s.readProfile()
	if err != nil {
		return err
	}
	result := energy.Estimate(p)
	s.last = &result
	render(s.out, result)
	return nil
}

func (s *session) readProfile() (energy.InputProfile, error) {
	var p energy.InputProfile
	var ok bool

	sexes := make([]string, len(energy.Sexes))
	for i, v := range energy.Sexes {
		sexes[i] = string(v)
	}
	text, err := s.choose("Sex", sexes, func(v string) string {
		return energy.SexLabel(energy.Sex(v))
	}, string(energy.DefaultSex))
	if err != nil {
		return p, err
	}
	if p.Sex, ok = energy.ParseSex(text); !ok {
		s.fallback(text, string(p.Sex))
	}

	if p.AgeYears, err = s.number("Age (years): "); err != nil {
		return p, err
	}
	if p.WeightKg, err = s.number("Weight (kg): "); err != nil {
		return p, err
	}
	if p.HeightCm, err = s.number("Height (cm): "); err != nil {
		return p, err
	}

	activities := make([]string, len(energy.ActivityLevels))
	for i, v := range energy.ActivityLevels {
		activities[i] = string(v)
	}
	text, err = s.choose("Activity level", activities, func(v string) string {
		return energy.ActivityLabel(energy.ActivityLevel(v))
	}, string(energy.DefaultActivityLevel))
	if err != nil {
		return p, err
	}
	if p.ActivityLevel, ok = energy.ParseActivityLevel(text); !ok {
		s.fallback(text, string(p.ActivityLevel))
	}

	goals := make([]string, len(energy.GoalLevels))
	for i, v := range energy.GoalLevels {
		goals[i] = string(v)
	}
	text, err = s.choose("Goal", goals, func(v string) string {
		return energy.GoalOptionLabel(energy.GoalLevel(v))
	}, string(energy.DefaultGoalLevel))
	if err != nil {
		return p, err
	}
	if p.GoalLevel, ok = energy.ParseGoalLevel(text); !ok {
		s.fallback(text, string(p.GoalLevel))
	}

	return p, nil
}

func (s *session) fallback(text, used string) {
	fmt.Fprintf(s.out, "  unknown option %q, using %s\n", text, used)
}

// prompt prints label and returns the trimmed answer. A final line without a
// newline is still returned; io.EOF only comes back when nothing was typed.
func (s *session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// number reads a numeric field; blank or non-numeric text counts as 0.
func (s *session) number(label string) (float64, error) {
	text, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	v, ok := energy.ParseNumber(text)
	if !ok && text != "" {
		fmt.Fprintf(s.out, "  %q is not a number, using 0\n", text)
	}
	return v, nil
}

// choose lists values with their labels and accepts either the option number
// or the value itself. Blank keeps def; anything unrecognised also keeps def.
func (s *session) choose(title string, values []string, label func(string) string, def string) (string, error) {
	fmt.Fprintf(s.out, "%s:\n", title)
	defIdx := 0
	for i, v := range values {
		marker := " "
		if v == def {
			marker = "*"
			defIdx = i + 1
		}
		fmt.Fprintf(s.out, " %s%d) %s\n", marker, i+1, label(v))
	}

	text, err := s.prompt(fmt.Sprintf("Choose 1-%d [%d]: ", len(values), defIdx))
	if err != nil {
		return "", err
	}
	if text == "" {
		return def, nil
	}
	if n, err := strconv.Atoi(text); err == nil {
		if n >= 1 && n <= len(values) {
			return values[n-1], nil
		}
		fmt.Fprintf(s.out, "  %d is out of range, using %s\n", n, def)
		return def, nil
	}
	return text, nil
}

// render prints a result the way the calculator's result panel lays it out.
func render(out io.Writer, r energy.EnergyResult) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Basal Metabolic Rate (BMR): %d kcal/day\n", r.BMR)
	fmt.Fprintf(out, "Total Daily Energy Expenditure (TDEE): %d kcal/day\n", r.TDEEBase)
	fmt.Fprintf(out, "With a goal of %s, you need to eat: %d kcal/day\n", energy.GoalLabel(r.GoalLevel), r.TDEE)
	if r.Macros != nil {
		fmt.Fprintln(out, "Macronutrients:")
		fmt.Fprintf(out, "  Carbohydrates: %dg\n", r.Macros.Carbs)
		fmt.Fprintf(out, "  Protein:       %dg\n", r.Macros.Protein)
		fmt.Fprintf(out, "  Fats:          %dg\n", r.Macros.Fats)
		if r.Macros.Carbs < 0 {
			fmt.Fprintln(out, "  (protein and fat alone exceed the calorie target)")
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
