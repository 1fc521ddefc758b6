package printer

import (
	"bytes"

	"github.com/fxamacker/cbor/v2"
	"github.com/joshuapare/nbtkit/nbt"
)

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map keys
// and shortest forms, so equal trees produce identical bytes regardless of
// member order.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("printer: CBOR encoder initialization failed: " + err.Error())
	}
}

// cborTag encodes {"<root name>": value}; byte arrays become byte strings.
func (p *Printer) cborTag(b *bytes.Buffer, t nbt.Tag) error {
	if t.IsEnd() {
		return cborEncode(b, nil)
	}
	return cborEncode(b, map[string]any{t.Name: plain(t.Value, false)})
}

func cborEncode(b *bytes.Buffer, v any) error {
	data, err := encMode.Marshal(v)
	if err != nil {
		return err
	}
	b.Write(data)
	return nil
}
