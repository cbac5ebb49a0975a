package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrNoAnswers      = errors.New("no answers provided")
	ErrUnknownAnswers = errors.New("answers reference an unknown question or option")
)

// Answers maps a question id to the selected option value.
type Answers map[string]string

// UnmarshalJSON accepts an object of scalar values, or a string holding such
// an object. Scalars are kept in their textual form and nulls are dropped.
func (a *Answers) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return err
		}
		if strings.TrimSpace(inner) == "" {
			*a = Answers{}
			return nil
		}
		data = []byte(inner)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("answers must be an object: %w", err)
	}
	out := make(Answers, len(raw))
	for k, v := range raw {
		v = bytes.TrimSpace(v)
		switch {
		case bytes.Equal(v, []byte("null")):
			continue
		case len(v) > 0 && v[0] == '"':
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return err
			}
			out[k] = s
		case len(v) > 0 && (v[0] == '{' || v[0] == '['):
			return fmt.Errorf("answer %q must be a scalar value", k)
		default:
			out[k] = string(v)
		}
	}
	*a = out
	return nil
}

// Keys returns question ids with integer ids first in numeric order, then any
// other keys lexicographically.
func (a Answers) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, errI := strconv.Atoi(keys[i])
		nj, errJ := strconv.Atoi(keys[j])
		switch {
		case errI == nil && errJ == nil:
			if ni != nj {
				return ni < nj
			}
			return keys[i] < keys[j]
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

// Values returns the selected values in Keys order.
func (a Answers) Values() []string {
	keys := a.Keys()
	values := make([]string, len(keys))
	for i, k := range keys {
		values[i] = a[k]
	}
	return values
}

// Validate checks the answers against the questionnaire. Unanswered questions
// are allowed; unknown ids or option values are not.
func Validate(a Answers) error {
	if len(a) == 0 {
		return ErrNoAnswers
	}
	for _, k := range a.Keys() {
		q, ok := findQuestion(k)
		if !ok {
			return fmt.Errorf("%w: question %q", ErrUnknownAnswers, k)
		}
		if !hasOption(q, a[k]) {
			return fmt.Errorf("%w: %q is not an option of question %s", ErrUnknownAnswers, a[k], k)
		}
	}
	return nil
}

func hasOption(q Question, value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}
