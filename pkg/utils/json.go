package utils

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson indenta com tabs. O MarshalIndent do jsoniter só aceita espaços,
// então a indentação fica com encoding/json.
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = jsonAPI.Marshal(in)
		if err != nil {
			return fmt.Sprintf("%v", in)
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "\t"); err != nil {
		return string(buffer)
	}

	return out.String()
}

// JSONB adapta qualquer valor para colunas jsonb do Postgres
type JSONB struct {
	V any
}

func (j JSONB) Value() (driver.Value, error) {
	b, err := jsonAPI.Marshal(j.V)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan preenche V (que deve ser um ponteiro) a partir da coluna jsonb
func (j JSONB) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("tipo não suportado para jsonb: %T", src)
	}

	if len(data) == 0 {
		return nil
	}

	return jsonAPI.Unmarshal(data, j.V)
}
