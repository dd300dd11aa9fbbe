// Package codec converts resume documents to and from their persisted JSON
// text.
package codec

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"resume-builder/resume/model"
)

//go:embed schema/resume.schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	})
	return schema, schemaErr
}

// Serialize encodes doc as JSON text. Nil collections are written as empty
// arrays so the output always deserializes.
func Serialize(doc model.ResumeDocument) (string, error) {
	data, err := json.Marshal(doc.Normalize())
	if err != nil {
		return "", fmt.Errorf("marshal resume: %w", err)
	}
	return string(data), nil
}

// Deserialize decodes persisted text. Documents without a selectedTemplate
// (or with one outside the catalog) get the default template; every other
// structural problem is returned as a *DeserializationError.
func Deserialize(text string) (model.ResumeDocument, error) {
	data := []byte(strings.TrimSpace(text))
	if len(data) == 0 {
		return model.ResumeDocument{}, &DeserializationError{Reason: "empty document"}
	}
	if !json.Valid(data) {
		return model.ResumeDocument{}, &DeserializationError{Reason: "malformed json"}
	}

	s, err := loadSchema()
	if err != nil {
		return model.ResumeDocument{}, fmt.Errorf("load resume schema: %w", err)
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return model.ResumeDocument{}, &DeserializationError{Reason: "schema validation", Err: err}
	}
	if !res.Valid() {
		details := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			details = append(details, e.String())
		}
		return model.ResumeDocument{}, &DeserializationError{Reason: "schema mismatch", Details: details}
	}

	var doc model.ResumeDocument
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return model.ResumeDocument{}, &DeserializationError{Reason: "decode", Err: err}
	}

	if details := duplicateDetails(doc); len(details) > 0 {
		return model.ResumeDocument{}, &DeserializationError{Reason: "duplicate entry ids", Details: details}
	}

	return doc.Normalize(), nil
}

func duplicateDetails(doc model.ResumeDocument) []string {
	var details []string
	add := func(collection string, dups []string) {
		for _, id := range dups {
			details = append(details, fmt.Sprintf("%s: duplicate id %q", collection, id))
		}
	}
	add("experienceItems", model.DuplicateIDs(doc.ExperienceItems))
	add("educationItems", model.DuplicateIDs(doc.EducationItems))
	add("skillItems", model.DuplicateIDs(doc.SkillItems))
	add("projectItems", model.DuplicateIDs(doc.ProjectItems))
	add("certificationItems", model.DuplicateIDs(doc.CertificationItems))
	return details
}
