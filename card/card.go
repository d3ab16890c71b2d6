package card

import (
	"fmt"
	"strings"
)

// Card is a single playing card packed into one byte.
//
// Encoding:
// - high 4 bits: suit (0:Spade, 1:Heart, 2:Club, 3:Diamond)
// - low 4 bits: rank (1:A, 2..9, 10:T, 11:J, 12:Q, 13:K)
type Card byte

func (c Card) String() string {
	if c == CardInvalid {
		return "Invalid"
	}
	if c == CardRear {
		return "Rear"
	}

	suit := Suit(c >> 4)
	rank := c & 0x0F

	rankStr := ""
	switch rank {
	case 1:
		rankStr = "A"
	case 10:
		rankStr = "T"
	case 11:
		rankStr = "J"
	case 12:
		rankStr = "Q"
	case 13:
		rankStr = "K"
	default:
		rankStr = fmt.Sprintf("%d", rank)
	}

	return fmt.Sprintf("%s%s", suit, rankStr)
}

// Rank returns the face value 1-13 (A=1, K=13).
func (c Card) Rank() byte {
	if c == CardInvalid || c == CardRear {
		return 0
	}
	return byte(c & 0x0F)
}

// Suit returns the suit (0:Spades, 1:Hearts, 2:Clubs, 3:Diamonds).
func (c Card) Suit() Suit {
	return Suit(c >> 4)
}

func (c Card) IsAce() bool {
	return c.Rank() == 1
}

// StrToCard converts a string such as "As", "Td" or "10h" into a Card
// constant.
func StrToCard(cardStr string) (Card, error) {
	if len(cardStr) < 2 {
		return 0, fmt.Errorf("invalid card string: %s", cardStr)
	}

	suitChar := cardStr[len(cardStr)-1]
	var suitBase Card

	switch suitChar {
	case 's', 'S':
		suitBase = 0x00
	case 'h', 'H':
		suitBase = 0x10
	case 'c', 'C':
		suitBase = 0x20
	case 'd', 'D':
		suitBase = 0x30
	default:
		return 0, fmt.Errorf("invalid suit: %c", suitChar)
	}

	rankStr := cardStr[:len(cardStr)-1]
	var rankVal Card

	switch strings.ToUpper(rankStr) {
	case "A":
		rankVal = 0x01
	case "2":
		rankVal = 0x02
	case "3":
		rankVal = 0x03
	case "4":
		rankVal = 0x04
	case "5":
		rankVal = 0x05
	case "6":
		rankVal = 0x06
	case "7":
		rankVal = 0x07
	case "8":
		rankVal = 0x08
	case "9":
		rankVal = 0x09
	case "T", "10":
		rankVal = 0x0A
	case "J":
		rankVal = 0x0B
	case "Q":
		rankVal = 0x0C
	case "K":
		rankVal = 0x0D
	default:
		return 0, fmt.Errorf("invalid rank: %s", rankStr)
	}

	return suitBase + rankVal, nil
}
