package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/nightable/gamenight/protocol"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		writeInternalError(err, w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeParseError(err error, w http.ResponseWriter) {
	log.Printf("parse error: %s", err)
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte("could not parse request body"))
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte(msg))
}

func writeInternalError(err error, w http.ResponseWriter) {
	log.Println(err.Error())
	w.WriteHeader(http.StatusInternalServerError)
}

// parseInboundMessage decodes a client message, accepting the command
// either as its wire number or its name.
func parseInboundMessage(data []byte) (protocol.InboundMessage, error) {
	var raw struct {
		Command  json.RawMessage `json:"command"`
		PlayerID string          `json:"playerID"`
		Number   int             `json:"number"`
		LineID   int             `json:"lineID"`
		TargetID string          `json:"targetID"`
		Text     string          `json:"text"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return protocol.InboundMessage{}, err
	}

	msg := protocol.InboundMessage{
		PlayerID: raw.PlayerID,
		Number:   raw.Number,
		LineID:   raw.LineID,
		TargetID: raw.TargetID,
		Text:     raw.Text,
	}

	var num protocol.Cmd
	if err := json.Unmarshal(raw.Command, &num); err == nil {
		msg.Command = num
		return msg, nil
	}

	var name string
	if err := json.Unmarshal(raw.Command, &name); err != nil {
		return protocol.InboundMessage{}, err
	}

	cmd, ok := protocol.NameToCmd[name]
	if !ok {
		return protocol.InboundMessage{}, fmt.Errorf("unknown command %q", name)
	}
	msg.Command = cmd

	return msg, nil
}
