package main

import (
	"io"

	json "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	formatText    = "text"
	formatJSON    = "json"
	formatMsgpack = "msgpack"
)

var encoders = map[string]func(io.Writer, []result) error{
	formatText:    writeText,
	formatJSON:    writeJSON,
	formatMsgpack: writeMsgpack,
}

// writeText prints one quoted value per line, prefixed by its type.
func writeText(w io.Writer, results []result) error {
	for _, r := range results {
		if err := writef(w, "# %s: %s\n", r.Type, r.Description); err != nil {
			return err
		}
		for _, v := range r.Values {
			if err := writef(w, "%s\t%q\n", r.Type, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeJSON(w io.Writer, results []result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func writeMsgpack(w io.Writer, results []result) error {
	return msgpack.NewEncoder(w).Encode(results)
}
