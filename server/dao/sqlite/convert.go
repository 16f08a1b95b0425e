package sqlite

import (
	"encoding/base64"
	"time"

	"github.com/dekarrin/rezi"
	"github.com/google/uuid"
	"github.com/guicampos/tale/server/dao"
)

// Conversions between Go values and their column representations. UUIDs and
// roles are stored as TEXT, times as Unix seconds, and game state as
// base64-wrapped REZI bytes.

func convertToDB_UUID(id uuid.UUID) string {
	return id.String()
}

func convertFromDB_UUID(s string, recv *uuid.UUID) error {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return err
	}
	*recv = parsed
	return nil
}

func convertToDB_Time(t time.Time) int64 {
	return t.Unix()
}

func convertFromDB_Time(i int64, recv *time.Time) error {
	*recv = time.Unix(i, 0)
	return nil
}

func convertToDB_Role(r dao.Role) string {
	return r.String()
}

func convertFromDB_Role(s string, recv *dao.Role) error {
	parsed, err := dao.ParseRole(s)
	if err != nil {
		return err
	}
	*recv = parsed
	return nil
}

func convertToDB_State(gs dao.GameState) (string, error) {
	data := rezi.EncBinary(gs)
	return base64.StdEncoding.EncodeToString(data), nil
}

func convertFromDB_State(s string, recv *dao.GameState) error {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return err
	}
	_, err = rezi.DecBinary(data, recv)
	return err
}
