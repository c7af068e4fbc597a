// Package seed produces synthetic student datasets for local runs and tests.
package seed

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math/rand"

	"github.com/dmitrijs2005/studentboard/internal/common"
	"github.com/jaswdr/faker"
)

var difficultyLevels = []string{"", "", "", "null", "general", "hardship", "severe hardship"}

// Options controls the generator. Zero field names fall back to the server's
// defaults so the output is accepted without extra configuration.
type Options struct {
	Count           int
	Seed            int64
	DifficultyField string
	PsychField      string
	PsychMarker     string
	NoMarker        string
}

func (o *Options) applyDefaults() {
	if o.DifficultyField == "" {
		o.DifficultyField = common.DefaultDifficultyField
	}
	if o.PsychField == "" {
		o.PsychField = common.DefaultPsychField
	}
	if o.PsychMarker == "" {
		o.PsychMarker = common.DefaultPsychMarker
	}
	if o.NoMarker == "" {
		o.NoMarker = "no"
	}
}

type field struct {
	name  string
	value any
}

// Student is one generated record with a stable field order.
type Student []field

func (s Student) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Generate returns opts.Count students. The same seed always yields the same
// dataset.
func Generate(opts Options) ([]Student, error) {
	if opts.Count < 0 {
		return nil, errors.New("count must not be negative")
	}
	opts.applyDefaults()

	fake := faker.NewWithSeed(rand.NewSource(opts.Seed))

	out := make([]Student, opts.Count)
	for i := range out {
		var difficulty any = fake.RandomStringElement(difficultyLevels)
		if fake.IntBetween(0, 9) == 0 {
			difficulty = nil
		}

		psych := opts.NoMarker
		if fake.IntBetween(0, 4) == 0 {
			psych = opts.PsychMarker
		}

		out[i] = Student{
			{name: "id", value: fake.Numerify("2024####")},
			{name: "name", value: fake.Person().Name()},
			{name: "class", value: fake.RandomStringElement([]string{"A", "B", "C", "D"})},
			{name: "age", value: fake.IntBetween(17, 24)},
			{name: "city", value: fake.Address().City()},
			{name: opts.DifficultyField, value: difficulty},
			{name: opts.PsychField, value: psych},
		}
	}
	return out, nil
}

// Write encodes students as a single JSON array, suitable for STUDENT_DATA.
func Write(w io.Writer, students []Student) error {
	if students == nil {
		students = []Student{}
	}
	return json.NewEncoder(w).Encode(students)
}
