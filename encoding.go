// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// All of the value types are encoded using their ISO 8601 extended
// representation, both as text, and hence JSON, and as YAML scalars.
// Decoding accepts the basic, extended and simple formats.

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.ToISOExtString()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	v, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.ToISOExtString()), nil
}

// UnmarshalText accepts HHMMSS as well as any of the formats accepted
// by ParseTimeOfDay.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	s := string(text)
	v, err := ParseTimeOfDayISOString(s)
	if err != nil {
		if v, err = ParseTimeOfDay(s); err != nil {
			return err
		}
	}
	*t = v
	return nil
}

func (dt DateTime) MarshalText() ([]byte, error) {
	return []byte(dt.ToISOExtString()), nil
}

func (dt *DateTime) UnmarshalText(text []byte) error {
	v, err := ParseDateTime(string(text))
	if err != nil {
		return err
	}
	*dt = v
	return nil
}

func (st SysTime) MarshalText() ([]byte, error) {
	return []byte(st.ToISOExtString()), nil
}

func (st *SysTime) UnmarshalText(text []byte) error {
	v, err := ParseSysTime(string(text))
	if err != nil {
		return err
	}
	*st = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.ISO8601()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := ParseISO8601Period(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func yamlScalar(node *yaml.Node, what string) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: %s must be a scalar: %w", node.Line, what, ErrInvalidFormat)
	}
	return node.Value, nil
}

func (d Date) MarshalYAML() (any, error) {
	return d.ToISOExtString(), nil
}

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	s, err := yamlScalar(node, "date")
	if err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

func (t TimeOfDay) MarshalYAML() (any, error) {
	return t.ToISOExtString(), nil
}

func (t *TimeOfDay) UnmarshalYAML(node *yaml.Node) error {
	s, err := yamlScalar(node, "time of day")
	if err != nil {
		return err
	}
	return t.UnmarshalText([]byte(s))
}

func (dt DateTime) MarshalYAML() (any, error) {
	return dt.ToISOExtString(), nil
}

func (dt *DateTime) UnmarshalYAML(node *yaml.Node) error {
	s, err := yamlScalar(node, "date time")
	if err != nil {
		return err
	}
	return dt.UnmarshalText([]byte(s))
}

func (st SysTime) MarshalYAML() (any, error) {
	return st.ToISOExtString(), nil
}

func (st *SysTime) UnmarshalYAML(node *yaml.Node) error {
	s, err := yamlScalar(node, "time")
	if err != nil {
		return err
	}
	return st.UnmarshalText([]byte(s))
}

func (d Duration) MarshalYAML() (any, error) {
	return d.ISO8601(), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	s, err := yamlScalar(node, "duration")
	if err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}
