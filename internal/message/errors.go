// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package message

import (
	"fmt"

	"github.com/MKhiriev/go-better-auth/internal/autherr"
)

type missingFieldError string

func (e missingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", string(e))
}

func errMissing(field string) error {
	return missingFieldError(field)
}

type requiredField struct {
	name  string
	value string
}

// requireFields reports the first empty field, in the order given.
func requireFields(messageType string, fields ...requiredField) error {
	for _, f := range fields {
		if f.value == "" {
			return autherr.Deserialization(messageType, errMissing(f.name))
		}
	}
	return nil
}
