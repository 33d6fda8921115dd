package protocol

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// RequestId is the {integer, string} correlator variant named in the data
// model. The zero value is not a valid id; construct with NewIntID/NewStrID
// or decode from JSON.
type RequestId struct {
	str     string
	num     int64
	isStr   bool
	isValid bool
}

// NewIntID builds an integer RequestId.
func NewIntID(v int64) RequestId {
	return RequestId{num: v, isValid: true}
}

// NewStrID builds a string RequestId.
func NewStrID(v string) RequestId {
	return RequestId{str: v, isStr: true, isValid: true}
}

// IsString reports whether the id was encoded as a JSON string.
func (id RequestId) IsString() bool { return id.isStr }

// String renders the id for logging and for use as a map key.
func (id RequestId) String() string {
	if !id.isValid {
		return "<invalid>"
	}
	if id.isStr {
		return id.str
	}
	return strconv.FormatInt(id.num, 10)
}

// Equal reports whether two ids refer to the same request.
func (id RequestId) Equal(other RequestId) bool {
	return id.isStr == other.isStr && id.str == other.str && id.num == other.num
}

func (id RequestId) MarshalJSON() ([]byte, error) {
	if id.isStr {
		return json.Marshal(id.str)
	}
	return json.Marshal(id.num)
}

func (id *RequestId) UnmarshalJSON(data []byte) error {
	decoded, err := decodeRequestId(data)
	if err != nil {
		return err
	}
	*id = decoded
	return nil
}

func decodeRequestId(raw json.RawMessage) (RequestId, error) {
	var asStr string
	if err := json.Unmarshal(raw, &asStr); err == nil {
		return RequestId{str: asStr, isStr: true, isValid: true}, nil
	}

	var asNum int64
	if err := json.Unmarshal(raw, &asNum); err == nil {
		return RequestId{num: asNum, isValid: true}, nil
	}

	return RequestId{}, errors.Errorf("id must be an integer or a string, got %s", string(raw))
}
