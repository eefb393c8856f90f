// Package api defines the engine's wire-level request/response types
// and the Evaluate entry point the HTTP facade calls.
package api

import (
	"github.com/jorge1289/solomon/fen"
	"github.com/jorge1289/solomon/format"
	"github.com/jorge1289/solomon/internal/config"
	"github.com/jorge1289/solomon/search"
)

// Request is the decoded form of a POST /api/evaluate body.
type Request struct {
	FEN   string `json:"fen"`
	Depth int    `json:"depth,omitempty"`
}

// Response is the JSON body returned for a successful Request. Move
// is omitted (its zero value is the empty string) when the position
// is checkmate or stalemate, per the no-move outcome contract.
type Response struct {
	Move  string `json:"move,omitempty"`
	Score int    `json:"score"`
	Nodes int    `json:"nodes"`
}

// Evaluate decodes req.FEN, runs the search to the requested depth
// (clamped to [1, cfg.MaxDepth], defaulting to cfg.DefaultDepth
// when unset; BestMove further caps it at search.MaxDepth) and returns the resulting Response. The only error it
// can return is a FEN decode failure; a position with no legal moves
// is not an error, it is a Response with Move left empty.
func Evaluate(req Request, cfg config.Config) (Response, error) {
	p, err := fen.Decode(req.FEN)
	if err != nil {
		return Response{}, err
	}

	depth := req.Depth
	if depth == 0 {
		depth = cfg.DefaultDepth
	}
	if depth > cfg.MaxDepth {
		depth = cfg.MaxDepth
	}
	if depth < 1 {
		depth = 1
	}

	result := search.NewEngineWithCapacity(cfg.TranspositionTableSizeHint).BestMove(p, depth)

	resp := Response{Score: result.Score, Nodes: result.Nodes}
	if result.HasMove {
		resp.Move = format.Move(result.Move)
	}
	return resp, nil
}
