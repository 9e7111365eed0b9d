// play.go
//
// `ciphermind play` — the interactive terminal game. Pure presentation:
// all rules live in internal/game; this file only renders pegs, prompts
// for guesses, and relays validation errors back to the player.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ciphermind/go-server/internal/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play CipherMind in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		runGameLoop(os.Stdin, cmd.OutOrStdout())
		return nil
	},
}

// pegStyles maps each symbol to its terminal color.
var pegStyles = map[game.Symbol]lipgloss.Style{
	game.Red:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	game.Green:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	game.Blue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	game.Yellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	game.Magenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	game.Cyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
}

// hintMessages maps advisory tiers to encouragement lines.
var hintMessages = map[game.HintTier]string{
	game.HintNoMatch:     "  💭 Hmm, try completely different colors!",
	game.HintRightColors: "  💡 You have the right colors, just wrong positions!",
	game.HintOneExact:    "  🎯 Getting warmer! One's in the right spot!",
	game.HintTwoExact:    "  🔥 Nice! Two are perfectly placed!",
	game.HintThreeExact:  "  ⚡ So close! Just one more to go!",
	game.HintProgress:    "  🎲 Keep analyzing the patterns...",
}

// renderCode draws a code as colored peg dots.
func renderCode(c game.Code) string {
	var b strings.Builder
	for _, s := range c {
		b.WriteString(pegStyles[s].Render("●"))
		b.WriteString(" ")
	}
	return b.String()
}

// printWelcome shows the banner and the rules.
func printWelcome(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "╔════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║          🧩 CIPHERMIND 🧩                  ║")
	fmt.Fprintln(w, "║   The Ultimate Code-Breaking Challenge     ║")
	fmt.Fprintln(w, "╚════════════════════════════════════════════╝")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "🎮 How to Play:")
	fmt.Fprintf(w, "  • I've created a secret %d-color code\n", game.DefaultCodeLength)
	fmt.Fprintln(w, "  • Available colors:")
	fmt.Fprint(w, "    ")
	for _, s := range game.Colors() {
		fmt.Fprintf(w, "%s = %c ", pegStyles[s].Render("●"), rune(s))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  • You have %d guesses to crack it!\n", game.DefaultMaxAttempts)
	fmt.Fprintln(w, "  • After each guess, I'll tell you:")
	fmt.Fprintln(w, "    - How many are EXACT (right color, right position)")
	fmt.Fprintln(w, "    - How many are COLOR matches (right color, wrong position)")
	fmt.Fprintf(w, "\n💡 Example: Enter your guess as %d letters, like: RGYB\n\n", game.DefaultCodeLength)
}

// runGameLoop is the outer play-again loop. Each iteration constructs a
// fresh session; the previous one is simply discarded.
func runGameLoop(in io.Reader, out io.Writer) {
	sc := bufio.NewScanner(in)
	for {
		printWelcome(out)
		sess := game.NewSession(game.Config{})

		if !playSession(sc, out, sess) {
			// Player quit mid-game.
			return
		}
		printOutcome(out, sess)

		if !promptYes(sc, out, "\n🔄 Play again? (y/n): ") {
			fmt.Fprintln(out, "\n👋 Thanks for playing CipherMind!")
			fmt.Fprintln(out, "Remember: Logic conquers all codes! 🧩")
			return
		}
	}
}

// playSession runs the guessing loop until the session is terminal.
// Returns false if the player quit (session abandoned).
func playSession(sc *bufio.Scanner, out io.Writer, sess *game.Session) bool {
	for sess.State() == game.StateInProgress {
		fmt.Fprint(out, "\n🎯 Enter your guess (or 'quit' to exit): ")
		if !sc.Scan() {
			revealAbandoned(out, sess)
			return false
		}
		input := strings.TrimSpace(sc.Text())

		if strings.EqualFold(input, "quit") {
			fmt.Fprintln(out, "\n👋 Thanks for playing!")
			revealAbandoned(out, sess)
			return false
		}

		fb, state, err := sess.SubmitRaw(input)
		if err != nil {
			fmt.Fprintf(out, "  ❌ %s\n", validationMessage(err))
			continue
		}

		// Echo the guess with colored pegs plus its feedback.
		last := sess.History()[len(sess.History())-1]
		fmt.Fprintf(out, "  Guess %d: %s\n", sess.Attempts(), renderCode(last.Guess))
		plural := "s"
		if fb.Color == 1 {
			plural = ""
		}
		fmt.Fprintf(out, "  → %d exact, %d color%s\n", fb.Exact, fb.Color, plural)

		if state == game.StateInProgress {
			fmt.Fprintln(out, hintMessages[game.Hint(fb)])
			if sess.AttemptsLeft() <= 2 {
				fmt.Fprintln(out, "  ⏰ Running out of guesses!")
			}
		}
	}
	return true
}

// validationMessage renders the error taxonomy for the player.
func validationMessage(err error) string {
	switch e := err.(type) {
	case *game.LengthError:
		return fmt.Sprintf("Invalid length! Please enter exactly %d colors.", e.Want)
	case *game.SymbolError:
		return fmt.Sprintf("Invalid color %q. Use only: %s", e.Symbol, game.Colors())
	default:
		return err.Error()
	}
}

// revealAbandoned abandons the session and shows the secret.
func revealAbandoned(out io.Writer, sess *game.Session) {
	secret := sess.Abandon()
	fmt.Fprintf(out, "  The code was: %s\n", renderCode(secret))
}

// printOutcome shows the win/loss summary once the session is terminal.
func printOutcome(out io.Writer, sess *game.Session) {
	fmt.Fprintln(out, "\n═══════════════════════════════════════════")
	if sess.State() == game.StateWon {
		fmt.Fprintln(out, "🎉 CONGRATULATIONS! 🎉")
		plural := "guesses"
		if sess.Attempts() == 1 {
			plural = "guess"
		}
		fmt.Fprintf(out, "You cracked the code in %d %s!\n", sess.Attempts(), plural)

		switch n := sess.Attempts(); {
		case n == 1:
			fmt.Fprintln(out, "🏆 INCREDIBLE! A hole-in-one!")
		case n <= 3:
			fmt.Fprintln(out, "⭐ AMAZING! You're a master codebreaker!")
		case n <= 6:
			fmt.Fprintln(out, "✨ EXCELLENT! Great logical thinking!")
		default:
			fmt.Fprintln(out, "👍 Well done!")
		}
	} else {
		fmt.Fprintln(out, "💥 GAME OVER!")
		fmt.Fprintf(out, "You've used all %d attempts.\n", sess.Attempts())
		fmt.Fprintf(out, "  The code was: %s\n", renderCode(sess.Reveal()))
		fmt.Fprintln(out, "\n🧠 Better luck next time! Each game is a new puzzle.")
	}
	fmt.Fprintln(out, "═══════════════════════════════════════════")
}

// promptYes asks a yes/no question; EOF counts as no.
func promptYes(sc *bufio.Scanner, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	if !sc.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(sc.Text())) {
	case "y", "yes":
		return true
	}
	return false
}
