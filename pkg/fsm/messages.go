package fsm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wordwheel/wheelbot/ent"
)

// The bot speaks Russian; every fixed string a player sees lives here.
const (
	msgPromptLetter       = "Назовите букву"
	msgPromptWord         = "Назовите слово"
	msgNotALetter         = "Это не буква!"
	msgLetterAlreadyNamed = "Такую букву уже называли!"
	msgLetterNotInWord    = "Такой буквы нет в слове"
	msgGuessCorrect       = "Верно!"
	msgWordWrong          = "Неверно!"
	msgTurnTimeout        = "Вы не успели, переход хода"
)

func playersConnectedMessage(count, minPlayers int) string {
	return fmt.Sprintf("Подключились (%d/%d) игроков", count, minPlayers)
}

func notEnoughPlayersMessage(count, minPlayers int) string {
	return fmt.Sprintf("Недостаточно игроков (%d/%d).\nИгра завершена.", count, minPlayers)
}

func letterAnnouncement(username, letter string) string {
	return fmt.Sprintf("@%s назвал букву: %s", username, letter)
}

func wordAnnouncement(username, word string) string {
	return fmt.Sprintf("@%s назвал слово: %s", username, word)
}

// finalScoreboard renders the end-of-game summary: the revealed answer,
// the winner's line, and the rest of the field ranked by points.
// Participants must carry their user edge.
func finalScoreboard(answer string, winner *ent.Participant, losers []*ent.Participant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎯 Игра завершена!\nСлово: %s\n\n", strings.ToUpper(answer))
	fmt.Fprintf(&b, "🏆 Победитель: @%s с %d очками", winner.Edges.User.Username, winner.Points)

	b.WriteString("\n\n💀 Проигравшие:\n")
	ranked := make([]*ent.Participant, len(losers))
	copy(ranked, losers)
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Points > ranked[j].Points })
	for i, p := range ranked {
		fmt.Fprintf(&b, "%d. @%s — %d очков\n", i+1, p.Edges.User.Username, p.Points)
	}

	return b.String()
}
