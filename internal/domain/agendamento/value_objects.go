package agendamento

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidDate          = errors.New("data must use the YYYY-MM-DD format")
	ErrInvalidHora          = errors.New("hora must use the HH:MM or HH:MM:SS format")
	ErrInvalidDuration      = errors.New("duracao_minutos must be a positive number of minutes")
	ErrTipoPagamentoTooLong = errors.New("tipo_pagamento must be at most 50 characters")
)

const (
	DateLayout             = "2006-01-02"
	DefaultDurationMinutes = 60
	MaxTipoPagamentoLength = 50
)

// Date is a calendar day with no time-of-day component.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Time() time.Time { return d.t }
func (d Date) String() string  { return d.t.Format(DateLayout) }
func (d Date) IsZero() bool    { return d.t.IsZero() }

// Hora is a wall-clock time of day, stored as the offset since midnight.
type Hora struct {
	sinceMidnight time.Duration
}

func ParseHora(s string) (Hora, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return Hora{sinceMidnight: time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second}, nil
		}
	}
	return Hora{}, ErrInvalidHora
}

func HoraFromDuration(d time.Duration) (Hora, error) {
	if d < 0 || d >= 24*time.Hour {
		return Hora{}, ErrInvalidHora
	}
	return Hora{sinceMidnight: d}, nil
}

func (h Hora) SinceMidnight() time.Duration { return h.sinceMidnight }

func (h Hora) String() string {
	total := int(h.sinceMidnight / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// Slot is the booked window: a start date and time plus a duration.
type Slot struct {
	data    Date
	hora    Hora
	minutes int32
}

func NewSlot(data Date, hora Hora, minutes *int32) (Slot, error) {
	if data.IsZero() {
		return Slot{}, ErrInvalidDate
	}
	m := int32(DefaultDurationMinutes)
	if minutes != nil {
		m = *minutes
	}
	if m <= 0 {
		return Slot{}, ErrInvalidDuration
	}
	return Slot{data: data, hora: hora, minutes: m}, nil
}

func (s Slot) Data() Date             { return s.data }
func (s Slot) Hora() Hora             { return s.hora }
func (s Slot) DurationMinutes() int32 { return s.minutes }

func (s Slot) Start() time.Time {
	return s.data.Time().Add(s.hora.SinceMidnight())
}

func (s Slot) End() time.Time {
	return s.Start().Add(time.Duration(s.minutes) * time.Minute)
}

// Payment describes how the customer paid and where the proof image lives.
type Payment struct {
	tipo        string
	comprovante *string
}

func NewPayment(tipo string, comprovante *string) (Payment, error) {
	tipo = strings.TrimSpace(tipo)
	if utf8.RuneCountInString(tipo) > MaxTipoPagamentoLength {
		return Payment{}, ErrTipoPagamentoTooLong
	}
	return Payment{tipo: tipo, comprovante: comprovante}, nil
}

func (p Payment) Tipo() string         { return p.tipo }
func (p Payment) Comprovante() *string { return p.comprovante }
