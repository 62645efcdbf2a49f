package models

import (
	"fmt"
	"testing"
)

func TestNewTicket(t *testing.T) {
	ticket := NewTicket()

	if len(ticket.Numbers) != TicketSize {
		t.Fatalf("Expected %d slots, but got %d", TicketSize, len(ticket.Numbers))
	}
	for i, n := range ticket.Numbers {
		want := fmt.Sprintf("%02d", i)
		if n.Number != want {
			t.Errorf("Expected slot %d to be %q, but got %q", i, want, n.Number)
		}
		if n.Amount != 0 {
			t.Errorf("Expected slot %q to start at 0, but got %v", n.Number, n.Amount)
		}
	}
}

func TestTicketApply(t *testing.T) {
	t.Run("accumulates deltas in order", func(t *testing.T) {
		ticket := NewTicket()
		updates := []TicketUpdate{
			{Number: "05", Amount: 10},
			{Number: "05", Amount: 3},
			{Number: "42", Amount: 7},
		}
		if err := ticket.Apply(updates, ApplyOptions{}); err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if got := ticket.Numbers[5].Amount; got != 13 {
			t.Errorf("Expected slot 05 to hold 13, but got %v", got)
		}
		if got := ticket.Numbers[42].Amount; got != 7 {
			t.Errorf("Expected slot 42 to hold 7, but got %v", got)
		}
	})

	t.Run("accumulates, never replaces", func(t *testing.T) {
		ticket := NewTicket()
		_ = ticket.Apply([]TicketUpdate{{Number: "00", Amount: 5}}, ApplyOptions{})
		_ = ticket.Apply([]TicketUpdate{{Number: "00", Amount: 5}}, ApplyOptions{})
		if got := ticket.Numbers[0].Amount; got != 10 {
			t.Errorf("Expected slot 00 to hold 10 after two applies, but got %v", got)
		}
	})

	t.Run("skips unmatched numbers silently", func(t *testing.T) {
		ticket := NewTicket()
		updates := []TicketUpdate{
			{Number: "100", Amount: 50},
			{Number: "7", Amount: 50}, // not zero-padded, matches nothing
			{Number: "07", Amount: 2},
		}
		if err := ticket.Apply(updates, ApplyOptions{}); err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		game := Game{Ticket: ticket}
		if got := game.TotalAmount(); got != 2 {
			t.Errorf("Expected only the matched delta to count, total 2, but got %v", got)
		}
	})

	t.Run("allows negative amounts by default", func(t *testing.T) {
		ticket := NewTicket()
		if err := ticket.Apply([]TicketUpdate{{Number: "01", Amount: -4}}, ApplyOptions{}); err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if got := ticket.Numbers[1].Amount; got != -4 {
			t.Errorf("Expected slot 01 to hold -4, but got %v", got)
		}
	})

	t.Run("strict mode rejects unknown numbers without applying anything", func(t *testing.T) {
		ticket := NewTicket()
		updates := []TicketUpdate{
			{Number: "03", Amount: 9},
			{Number: "xx", Amount: 1},
		}
		if err := ticket.Apply(updates, ApplyOptions{RejectUnknown: true}); err == nil {
			t.Fatal("Expected an error for an unknown number, but got nil")
		}
		if got := ticket.Numbers[3].Amount; got != 0 {
			t.Errorf("Expected rejected batch to leave slot 03 at 0, but got %v", got)
		}
	})

	t.Run("strict mode rejects batches that drive an amount negative", func(t *testing.T) {
		ticket := NewTicket()
		_ = ticket.Apply([]TicketUpdate{{Number: "09", Amount: 5}}, ApplyOptions{})
		updates := []TicketUpdate{
			{Number: "09", Amount: -3},
			{Number: "09", Amount: -3},
		}
		if err := ticket.Apply(updates, ApplyOptions{RejectNegative: true}); err == nil {
			t.Fatal("Expected an error for a negative result, but got nil")
		}
		if got := ticket.Numbers[9].Amount; got != 5 {
			t.Errorf("Expected rejected batch to leave slot 09 at 5, but got %v", got)
		}
	})
}

// withAmounts builds a game whose first len(amounts) slots hold the given
// amounts, the rest zero.
func withAmounts(amounts ...float64) Game {
	game := Game{Ticket: NewTicket()}
	for i, a := range amounts {
		game.Ticket.Numbers[i].Amount = a
	}
	return game
}

func TestGameAggregates(t *testing.T) {
	t.Run("total amount sums every slot", func(t *testing.T) {
		game := withAmounts(5, 5, 3, 5)
		if got := game.TotalAmount(); got != 18 {
			t.Errorf("Expected total 18, but got %v", got)
		}
	})

	t.Run("lowest slot ties resolve to the lowest key", func(t *testing.T) {
		game := withAmounts(5, 5, 3, 5)
		// Slots "04".."99" hold 0 and all tie; "04" is the first of them.
		if got := game.LowestAmountNumber(); got.Number != "04" || got.Amount != 0 {
			t.Errorf("Expected lowest slot 04/0, but got %s/%v", got.Number, got.Amount)
		}
	})

	t.Run("lowest among explicit amounts", func(t *testing.T) {
		game := withAmounts(5, 5, 3, 5)
		for i := 4; i < len(game.Ticket.Numbers); i++ {
			game.Ticket.Numbers[i].Amount = 9
		}
		if got := game.LowestAmountNumber(); got.Number != "02" || got.Amount != 3 {
			t.Errorf("Expected lowest slot 02/3, but got %s/%v", got.Number, got.Amount)
		}
	})

	t.Run("highest slot ties resolve to the lowest key", func(t *testing.T) {
		game := withAmounts(7, 7, 2, 7)
		if got := game.HighestAmountNumber(); got.Number != "00" || got.Amount != 7 {
			t.Errorf("Expected highest slot 00/7, but got %s/%v", got.Number, got.Amount)
		}
	})

	t.Run("giveaway is lowest amount times prize", func(t *testing.T) {
		game := Game{Ticket: NewTicket(), Prize: 7}
		for i := range game.Ticket.Numbers {
			game.Ticket.Numbers[i].Amount = 10
		}
		if got := game.TotalGiveAway(); got != 70 {
			t.Errorf("Expected giveaway 70, but got %v", got)
		}
	})

	t.Run("view recomputes the same aggregates on every read", func(t *testing.T) {
		game := withAmounts(1, 2, 3)
		first := NewGameView(&game)
		second := NewGameView(&game)
		if first.TotalAmount != second.TotalAmount ||
			first.LowestAmountNumber != second.LowestAmountNumber ||
			first.HighestAmountNumber != second.HighestAmountNumber ||
			first.TotalGiveAway != second.TotalGiveAway {
			t.Errorf("Expected identical derived aggregates on repeated reads, got %+v vs %+v", first, second)
		}
	})
}
