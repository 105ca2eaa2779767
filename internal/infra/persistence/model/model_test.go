package model

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gormTag(t *testing.T, model any, field string) string {
	t.Helper()

	f, ok := reflect.TypeOf(model).FieldByName(field)
	require.True(t, ok, "field %s not found", field)

	return f.Tag.Get("gorm")
}

// Lookup columns must carry a uniqueness constraint so duplicate inserts
// fail at the database even under concurrent requests.
func TestUniqueColumns(t *testing.T) {
	assert.Contains(t, gormTag(t, AccountModel{}, "Email"), "unique")
	assert.Contains(t, gormTag(t, PendingVerificationModel{}, "AccountID"), "uniqueIndex")
	assert.Contains(t, gormTag(t, PendingVerificationModel{}, "TokenHash"), "uniqueIndex")
}

func TestNotNullColumns(t *testing.T) {
	for model, fields := range map[any][]string{
		AccountModel{}:             {"Email", "Name", "PasswordHash", "DateOfBirth", "Verified"},
		PendingVerificationModel{}: {"AccountID", "TokenHash", "ExpiresAt"},
	} {
		for _, field := range fields {
			tag := gormTag(t, model, field)
			assert.True(t, strings.Contains(tag, "not null"), "%T.%s tag %q", model, field, tag)
		}
	}
}
