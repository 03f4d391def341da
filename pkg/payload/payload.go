// Package payload unwraps the response envelopes of the race backend.
//
// The backend answers with
//
//	{"success": true, "data": ..., "message": "..."}
//
// list endpoints may page their data as {"data": [...], "total": n}.
// Bare values without an envelope are accepted as well.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/f1board/f1board/pkg/model"
)

var (
	ErrEmpty          = errors.New("empty payload")
	ErrInvalidJSON    = errors.New("invalid json")
	ErrUnsuccessful   = errors.New("backend reported failure")
	ErrUnexpectedKind = errors.New("unexpected json kind")
)

// Unwrap returns the data part of an envelope or the document itself.
func Unwrap(data []byte) (gjson.Result, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return gjson.Result{}, ErrEmpty
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return doc, nil
	}
	success := doc.Get("success")
	if !success.Exists() {
		return doc, nil
	}
	if !success.Bool() {
		msg := doc.Get("message").String()
		if msg == "" {
			msg = "no message"
		}
		return gjson.Result{}, fmt.Errorf("%w: %s", ErrUnsuccessful, msg)
	}
	return doc.Get("data"), nil
}

// Decode unmarshals a single object.
func Decode[T any](data []byte) (*T, error) {
	res, err := Unwrap(data)
	if err != nil {
		return nil, err
	}
	return decodeObject[T](res)
}

// DecodeList unmarshals an array, a paginated {"data": [...]} object or a
// single object into a list.
func DecodeList[T any](data []byte) ([]*T, error) {
	res, err := Unwrap(data)
	if err != nil {
		return nil, err
	}
	if res.IsObject() {
		if inner := res.Get("data"); inner.IsArray() {
			res = inner
		}
	}
	if res.IsObject() {
		item, err := decodeObject[T](res)
		if err != nil {
			return nil, err
		}
		return []*T{item}, nil
	}
	if !res.IsArray() {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedKind, kind(res))
	}
	items := res.Array()
	ret := make([]*T, 0, len(items))
	for i, v := range items {
		item, err := decodeObject[T](v)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		ret = append(ret, item)
	}
	return ret, nil
}

func decodeObject[T any](res gjson.Result) (*T, error) {
	if !res.IsObject() {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedKind, kind(res))
	}
	var ret T
	if err := json.Unmarshal([]byte(res.Raw), &ret); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return &ret, nil
}

func kind(res gjson.Result) string {
	switch {
	case !res.Exists():
		return "missing"
	case res.IsArray():
		return "array"
	case res.IsObject():
		return "object"
	}
	return res.Type.String()
}

func DecodeRace(data []byte) (*model.Race, error) {
	return Decode[model.Race](data)
}

func DecodeRaces(data []byte) ([]*model.Race, error) {
	return DecodeList[model.Race](data)
}

func DecodeDrivers(data []byte) ([]*model.Driver, error) {
	return DecodeList[model.Driver](data)
}

func DecodeConstructors(data []byte) ([]*model.Constructor, error) {
	return DecodeList[model.Constructor](data)
}
