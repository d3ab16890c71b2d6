package main

import (
	"errors"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"blackjack-lite/blackjack"
)

func main() {
	pterm.Print("\n")
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}
	pterm.Println()

	game := setupGame()

	for {
		if err := playRound(game); err != nil {
			if errors.Is(err, blackjack.ErrGameOver) {
				pterm.Error.Println("You are out of chips, the house thanks you for your visit.")
				return
			}
			pterm.Error.Println(err.Error())
			return
		}

		if game.Snapshot().GameOver {
			pterm.Error.Println("You are out of chips, the house thanks you for your visit.")
			return
		}
		again, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Another round?").WithDefaultValue(true).Show()
		if !again {
			break
		}
		if err := game.NextRound(); err != nil {
			pterm.Error.Println(err.Error())
			return
		}
	}
	pterm.Println("Thanks for playing...")
}

// setupGame prompts for the table parameters until they validate.
func setupGame() *blackjack.Game {
	for {
		decksStr, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Number of decks in the shoe (1-8)").WithDefaultValue("6").Show()
		balanceStr, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Opening balance (1000-10000)").WithDefaultValue("1000").Show()
		pterm.Println()

		decks, _ := strconv.Atoi(decksStr)
		balance, _ := strconv.Atoi(balanceStr)
		game, err := blackjack.NewGame(blackjack.Config{
			Decks:          decks,
			InitialBalance: int64(balance),
		})
		if err != nil {
			pterm.Error.Printfln("Invalid table: %v", err)
			continue
		}
		pterm.Info.Printfln("Table opened: %d decks, %d chips", decks, balance)
		return game
	}
}

func playRound(g *blackjack.Game) error {
	settled, err := bettingPhase(g)
	if err != nil {
		return err
	}

	for settled == nil {
		printTable(g.Snapshot())
		settled, err = actionPhase(g)
		if err != nil {
			return err
		}
	}

	printTable(g.Snapshot())
	printSettlement(settled)
	return nil
}

// bettingPhase stacks chips until the player deals. The returned
// settlement is non-nil when the deal lands a natural and ends the
// round on the spot.
func bettingPhase(g *blackjack.Game) (*blackjack.SettlementResult, error) {
	for {
		snap := g.Snapshot()
		pterm.Info.Printfln("Balance: %d  Staged bet: %d", snap.Balance, snap.StagedBet)

		options := make([]string, 0, len(blackjack.ChipValues)+2)
		for _, v := range blackjack.ChipValues {
			options = append(options, "Chip "+strconv.FormatInt(v, 10))
		}
		options = append(options, "Deal", "Reset bet")

		choice, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText("Place your bet").WithOptions(options).Show()

		switch choice {
		case "Deal":
			settled, err := g.Deal()
			if err != nil {
				if errors.Is(err, blackjack.ErrNoBet) {
					pterm.Error.Println("Stack some chips first.")
					continue
				}
				return nil, err
			}
			return settled, nil
		case "Reset bet":
			if err := g.RestartBet(); err != nil {
				return nil, err
			}
		default:
			amount, _ := strconv.ParseInt(choice[len("Chip "):], 10, 64)
			if err := g.IncreaseBet(amount); err != nil {
				if errors.Is(err, blackjack.ErrInsufficientChips) {
					pterm.Error.Println("Not enough chips for that.")
					continue
				}
				return nil, err
			}
		}
	}
}

// actionPhase plays one player decision. The returned settlement is
// non-nil once the action closes the round.
func actionPhase(g *blackjack.Game) (*blackjack.SettlementResult, error) {
	legal := g.LegalActions()
	options := make([]string, 0, len(legal))
	byName := make(map[string]blackjack.ActionType, len(legal))
	for _, a := range legal {
		name := blackjack.PlayerActionTypeDictionary[a]
		options = append(options, name)
		byName[name] = a
	}

	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Your action").WithOptions(options).Show()

	switch byName[choice] {
	case blackjack.PlayerActionTypeHit:
		return g.Hit()
	case blackjack.PlayerActionTypeStand:
		return g.Stand()
	case blackjack.PlayerActionTypeDouble:
		return g.DoubleDown()
	case blackjack.PlayerActionTypeSplit:
		return g.Split()
	case blackjack.PlayerActionTypeSurrender:
		return g.Surrender()
	}
	return nil, errors.New("unknown action " + choice)
}
