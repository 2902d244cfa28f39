package repositories

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propwise/manager-api/internal/utils"
)

func TestDuplicateKeyErrorFromUsernameConstraint(t *testing.T) {
	err := duplicateKeyError(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "building_managers_username_key",
	})

	require.NotNil(t, err)
	assert.Equal(t, utils.KindDuplicateKey, err.Kind)
	assert.Equal(t, []string{"username"}, err.Fields)
	assert.Equal(t, "Duplicate fields not allowed username", err.Message)
}

func TestDuplicateKeyErrorFromEmailConstraint(t *testing.T) {
	err := duplicateKeyError(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "building_managers_email_key",
	})

	require.NotNil(t, err)
	assert.Equal(t, []string{"email"}, err.Fields)
}

func TestDuplicateKeyErrorUnknownConstraintNamesItself(t *testing.T) {
	err := duplicateKeyError(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "building_managers_pkey",
	})

	require.NotNil(t, err)
	assert.Equal(t, []string{"building_managers_pkey"}, err.Fields)
}

func TestDuplicateKeyErrorIgnoresOtherCodes(t *testing.T) {
	assert.Nil(t, duplicateKeyError(&pgconn.PgError{Code: "23503"}))
	assert.Nil(t, duplicateKeyError(errors.New("connection refused")))
	assert.Nil(t, duplicateKeyError(nil))
}

func TestUUIDArrayRoundTrip(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	arr, err := uuidArrayParam(ids)
	require.NoError(t, err)

	got, err := uuidArrayValue(arr)
	require.NoError(t, err)
	assert.Equal(t, ids, got)
}

func TestUUIDArrayEmpty(t *testing.T) {
	arr, err := uuidArrayParam(nil)
	require.NoError(t, err)

	got, err := uuidArrayValue(arr)
	require.NoError(t, err)
	assert.Empty(t, got)
}
