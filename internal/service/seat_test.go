package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tablemap/tablemap/internal/model"
	"github.com/tablemap/tablemap/internal/repository"
)

func TestClaimSeat(t *testing.T) {
	seats := &fakeSeatStore{}
	tables := &fakeTableStore{getTable: &model.Table{ID: 3, Capacity: 8}}
	parties := &fakePartyStore{getParty: &model.Party{ID: 12, PartySize: 4}}
	svc := NewSeatService(seats, tables, parties)

	got, err := svc.Claim(context.Background(), 3, model.ClaimSeatRequest{
		SeatNumber:  2,
		PartyID:     12,
		MemberIndex: 1,
	})
	if err != nil {
		t.Fatalf("claim seat: %v", err)
	}
	if got.TableID != 3 || got.SeatNumber != 2 {
		t.Fatalf("expected seat (3, 2), got (%d, %d)", got.TableID, got.SeatNumber)
	}
	if seats.claimPartyID != 12 || seats.claimMember != 1 {
		t.Fatalf("expected claim for party 12 member 1, got party %d member %d", seats.claimPartyID, seats.claimMember)
	}
}

func TestClaimSeatValidation(t *testing.T) {
	seats := &fakeSeatStore{}
	svc := NewSeatService(seats, &fakeTableStore{}, &fakePartyStore{})

	_, err := svc.Claim(context.Background(), 3, model.ClaimSeatRequest{SeatNumber: 0, PartyID: 1, MemberIndex: 1})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for seat 0, got %v", err)
	}

	_, err = svc.Claim(context.Background(), 3, model.ClaimSeatRequest{SeatNumber: 1, PartyID: 1, MemberIndex: 0})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for member index 0, got %v", err)
	}
	if seats.claimTableID != 0 {
		t.Fatal("store must not be touched on validation failure")
	}
}

func TestClaimSeatUnknownTableOrParty(t *testing.T) {
	tables := &fakeTableStore{getTable: &model.Table{ID: 3}}
	parties := &fakePartyStore{getParty: &model.Party{ID: 12}}
	svc := NewSeatService(&fakeSeatStore{}, tables, parties)

	_, err := svc.Claim(context.Background(), 99, model.ClaimSeatRequest{SeatNumber: 1, PartyID: 12, MemberIndex: 1})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found for unknown table, got %v", err)
	}

	_, err = svc.Claim(context.Background(), 3, model.ClaimSeatRequest{SeatNumber: 1, PartyID: 99, MemberIndex: 1})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found for unknown party, got %v", err)
	}
}

func TestClaimSeatAllowsIndexBeyondPartySize(t *testing.T) {
	// The declared headcount is advisory; the ledger accepts any positive
	// member index so the admin can seat late additions first and fix the
	// roster after.
	tables := &fakeTableStore{getTable: &model.Table{ID: 3}}
	parties := &fakePartyStore{getParty: &model.Party{ID: 12, PartySize: 2}}
	svc := NewSeatService(&fakeSeatStore{}, tables, parties)

	_, err := svc.Claim(context.Background(), 3, model.ClaimSeatRequest{SeatNumber: 5, PartyID: 12, MemberIndex: 7})
	if err != nil {
		t.Fatalf("expected claim beyond declared size to succeed, got %v", err)
	}
}

func TestListSeatsRequiresTable(t *testing.T) {
	svc := NewSeatService(&fakeSeatStore{}, &fakeTableStore{}, &fakePartyStore{})

	_, err := svc.List(context.Background(), 42)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found for unknown table, got %v", err)
	}
}

func TestReleaseSeatDelegates(t *testing.T) {
	seats := &fakeSeatStore{}
	svc := NewSeatService(seats, &fakeTableStore{}, &fakePartyStore{})

	if err := svc.Release(context.Background(), 3, 6); err != nil {
		t.Fatalf("release seat: %v", err)
	}
	if seats.releasedSeat != 6 {
		t.Fatalf("expected release of seat 6, got %d", seats.releasedSeat)
	}
}
