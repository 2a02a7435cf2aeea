package response

import (
	"regexp"
	"strings"

	"study-buddy/backend/internal/model"
)

// separatorRegex matches the card separator and any longer run of dashes a
// model may write in its place.
var separatorRegex = regexp.MustCompile(`-{3,}`)

var frontBackRegex = regexp.MustCompile(`(?is)FRONT\s*:\**\s*(.*?)\s*\**\s*BACK\s*:\**\s*(.*)`)

// SplitCards splits a flashcard batch on the card separator (three or more
// dashes). Segments that are
// blank after trimming are dropped, so a trailing separator adds no card and
// text without any separator becomes a single card.
func SplitCards(text string) []model.Card {
	var cards []model.Card
	for _, segment := range separatorRegex.Split(text, -1) {
		content := strings.TrimSpace(segment)
		if content == "" {
			continue
		}
		card := model.Card{
			Index:   len(cards) + 1,
			Content: content,
		}
		card.Front, card.Back = splitFrontBack(content)
		cards = append(cards, card)
	}
	return cards
}

// splitFrontBack extracts FRONT:/BACK: fields when both are present.
func splitFrontBack(content string) (string, string) {
	m := frontBackRegex.FindStringSubmatch(content)
	if len(m) < 3 {
		return "", ""
	}
	front := strings.Trim(m[1], "* \n\t")
	back := strings.Trim(m[2], "* \n\t")
	if front == "" || back == "" {
		return "", ""
	}
	return front, back
}
