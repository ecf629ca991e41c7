package model

import (
	"bytes"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	errs "stonks/internal/errors"
)

// DecodeDocument parses a JSON request body into an ordered BSON document.
// Any well-formed JSON object is accepted; no schema check happens here.
func DecodeDocument(data []byte) (bson.D, error) {
	var doc bson.D
	if err := bson.UnmarshalExtJSON(data, false, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedBody, err)
	}
	return doc, nil
}

// EncodeDocument renders a stored document as relaxed JSON, passing field
// names, order, and value shapes through unchanged.
func EncodeDocument(doc bson.D) ([]byte, error) {
	out, err := bson.MarshalExtJSON(doc, false, false)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return out, nil
}

// EncodeDocuments assembles documents into a JSON array in the given
// order. Zero documents render as the literal [].
func EncodeDocuments(docs []bson.D) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, doc := range docs {
		if i > 0 {
			buf.WriteByte(',')
		}
		out, err := EncodeDocument(doc)
		if err != nil {
			return nil, err
		}
		buf.Write(out)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
