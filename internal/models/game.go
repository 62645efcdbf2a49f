package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TicketSize is the fixed number of slots in every ticket, "00" through "99".
const TicketSize = 100

// TicketNumber is a single two-digit slot and the amount wagered against it.
type TicketNumber struct {
	Number string  `bson:"number" json:"number"`
	Amount float64 `bson:"amount" json:"amount"`
}

// Ticket holds the full set of 100 slots for one game. It is created fully
// populated and never resized.
type Ticket struct {
	Numbers []TicketNumber `bson:"numbers" json:"numbers"`
}

// TicketUpdate is one requested delta against a slot.
type TicketUpdate struct {
	Number string  `bson:"number" json:"number" binding:"required"`
	Amount float64 `bson:"amount" json:"amount"`
}

// ApplyOptions controls the opt-in strict behaviors of Ticket.Apply. The
// zero value preserves the historical behavior: unknown numbers are skipped
// and amounts may go negative.
type ApplyOptions struct {
	RejectUnknown  bool
	RejectNegative bool
}

// Game represents one daily draw and the ticket ledger it owns.
type Game struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Prize     float64            `bson:"prize" json:"prize"`
	Date      time.Time          `bson:"date" json:"date"`
	Time      string             `bson:"time" json:"time"`
	Ticket    Ticket             `bson:"ticket" json:"ticket"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewTicket builds the initial ledger: slots "00".."99" in ascending order,
// every amount zero.
func NewTicket() Ticket {
	numbers := make([]TicketNumber, 0, TicketSize)
	for i := 0; i < TicketSize; i++ {
		numbers = append(numbers, TicketNumber{Number: fmt.Sprintf("%02d", i)})
	}
	return Ticket{Numbers: numbers}
}

// Apply accumulates the updates into the ticket in input order. Updates whose
// number matches no slot are skipped, and repeated numbers in one call all
// accumulate. With strict options set it validates the whole batch first and
// applies nothing on failure, so the ledger is never left half-updated.
func (t *Ticket) Apply(updates []TicketUpdate, opts ApplyOptions) error {
	if opts.RejectUnknown || opts.RejectNegative {
		pending := make(map[string]float64, len(updates))
		for _, u := range updates {
			slot := t.find(u.Number)
			if slot == nil {
				if opts.RejectUnknown {
					return fmt.Errorf("unknown ticket number %q", u.Number)
				}
				continue
			}
			pending[u.Number] += u.Amount
			if opts.RejectNegative && slot.Amount+pending[u.Number] < 0 {
				return fmt.Errorf("ticket number %q would go negative", u.Number)
			}
		}
	}
	for _, u := range updates {
		if slot := t.find(u.Number); slot != nil {
			slot.Amount += u.Amount
		}
	}
	return nil
}

func (t *Ticket) find(number string) *TicketNumber {
	for i := range t.Numbers {
		if t.Numbers[i].Number == number {
			return &t.Numbers[i]
		}
	}
	return nil
}

// TotalAmount is the sum of all slot amounts.
func (g *Game) TotalAmount() float64 {
	var total float64
	for _, n := range g.Ticket.Numbers {
		total += n.Amount
	}
	return total
}

// LowestAmountNumber returns the slot holding the minimal amount. The scan
// starts at slot "00" and only moves on a strictly lesser amount, so ties
// resolve to the lowest-keyed slot.
func (g *Game) LowestAmountNumber() TicketNumber {
	if len(g.Ticket.Numbers) == 0 {
		return TicketNumber{}
	}
	lowest := g.Ticket.Numbers[0]
	for _, n := range g.Ticket.Numbers[1:] {
		if n.Amount < lowest.Amount {
			lowest = n
		}
	}
	return lowest
}

// HighestAmountNumber returns the slot holding the maximal amount, ties
// resolving to the lowest-keyed slot.
func (g *Game) HighestAmountNumber() TicketNumber {
	if len(g.Ticket.Numbers) == 0 {
		return TicketNumber{}
	}
	highest := g.Ticket.Numbers[0]
	for _, n := range g.Ticket.Numbers[1:] {
		if n.Amount > highest.Amount {
			highest = n
		}
	}
	return highest
}

// TotalGiveAway is the payout owed: the lowest slot's amount times the prize
// rate.
func (g *Game) TotalGiveAway() float64 {
	return g.LowestAmountNumber().Amount * g.Prize
}

// GameView is a Game plus its derived aggregates, recomputed for every
// response; nothing here is persisted.
type GameView struct {
	Game
	TotalAmount         float64      `json:"totalAmount"`
	LowestAmountNumber  TicketNumber `json:"lowestAmountNumber"`
	HighestAmountNumber TicketNumber `json:"highestAmountNumber"`
	TotalGiveAway       float64      `json:"totalGiveAway"`
}

// NewGameView attaches the derived aggregates to a game.
func NewGameView(g *Game) GameView {
	return GameView{
		Game:                *g,
		TotalAmount:         g.TotalAmount(),
		LowestAmountNumber:  g.LowestAmountNumber(),
		HighestAmountNumber: g.HighestAmountNumber(),
		TotalGiveAway:       g.TotalGiveAway(),
	}
}

// GameResult is the reduced listing shape used for today's games and the
// past-results feed: just the winning (lowest) slot and when it was drawn.
type GameResult struct {
	Number TicketNumber `json:"number"`
	Date   time.Time    `json:"date"`
	Time   string       `json:"time"`
	Name   string       `json:"name"`
}

// SalesReport aggregates sale and profit across a set of games.
type SalesReport struct {
	TotalGames    int     `json:"totalGames"`
	TotalSale     float64 `json:"totalSale"`
	TotalProfit   float64 `json:"totalProfit"`
	TotalGiveAway float64 `json:"totalGiveAway"`
}
