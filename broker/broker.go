// Package broker exchanges moves between two game processes over
// HTTP+JSON. Each process posts the moves its local players make and
// polls for the moves of the remote side, keyed by turn number.
package broker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"wargame/game"
)

// CoordRecord is the wire form of one board coordinate
type CoordRecord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MoveRecord is the wire form of one move, tagged with the turn it was
// played on so stale moves can be told apart from the expected one
type MoveRecord struct {
	From CoordRecord `json:"from"`
	To   CoordRecord `json:"to"`
	Turn int         `json:"turn"`
}

// NewMoveRecord tags a move with its turn number
func NewMoveRecord(move game.CoordPair, turn int) MoveRecord {
	return MoveRecord{
		From: CoordRecord{Row: move.Src.Row, Col: move.Src.Col},
		To:   CoordRecord{Row: move.Dst.Row, Col: move.Dst.Col},
		Turn: turn,
	}
}

// Move converts the record back to a board move
func (r MoveRecord) Move() game.CoordPair {
	return game.CoordPair{
		Src: game.Coord{Row: r.From.Row, Col: r.From.Col},
		Dst: game.Coord{Row: r.To.Row, Col: r.To.Col},
	}
}

// Envelope wraps every broker response. Data is null until a move has
// been posted
type Envelope struct {
	Success bool        `json:"success"`
	Data    *MoveRecord `json:"data"`
}

// Client talks to a remote move broker. All failures are transient by
// design: a broken fetch reads as "no move yet" and the caller polls
// again, so a flaky network can stall a match but never kill it
type Client struct {
	url    string
	client *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchMove returns the move posted for the given turn, or nil when the
// broker has nothing usable yet
func (c *Client) FetchMove(ctx context.Context, turn int) *game.CoordPair {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		log.Warn().Msgf("broker: building fetch request: %v", err)
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn().Msgf("broker: fetch failed: %v", err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Warn().Msgf("broker: fetch returned status %d", resp.StatusCode)
		return nil
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		log.Warn().Msgf("broker: decoding fetch response: %v", err)
		return nil
	}
	if !env.Success || env.Data == nil {
		return nil
	}
	if env.Data.Turn != turn {
		log.Debug().Msgf("broker: ignoring move for turn %d while waiting for turn %d", env.Data.Turn, turn)
		return nil
	}
	move := env.Data.Move()
	return &move
}

// PostMove publishes a performed move. The broker must echo the record
// back; anything else counts as a failed post. Posting is best-effort
func (c *Client) PostMove(ctx context.Context, move game.CoordPair, turn int) bool {
	record := NewMoveRecord(move, turn)
	body, err := json.Marshal(record)
	if err != nil {
		log.Warn().Msgf("broker: encoding move: %v", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		log.Warn().Msgf("broker: building post request: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn().Msgf("broker: post failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		log.Warn().Msgf("broker: decoding post response: %v", err)
		return false
	}
	if resp.StatusCode != http.StatusOK || !env.Success || env.Data == nil || *env.Data != record {
		log.Warn().Msgf("broker: move %s for turn %d was not accepted (status %d)",
			move, turn, resp.StatusCode)
		return false
	}
	log.Info().Msgf("broker: posted move %s for turn %d", move, turn)
	return true
}

// String identifies the broker endpoint in logs
func (c *Client) String() string {
	return fmt.Sprintf("broker at %s", c.url)
}
