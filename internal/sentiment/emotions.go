package sentiment

import "strings"

// emotionKeywords is a fixed heuristic policy; matching is plain
// substring containment, no stemming or word boundaries.
var emotionKeywords = map[string][]string{
	"joy":      {"happy", "joy", "excited", "delighted", "pleased", "satisfied", "amazing", "wonderful", "excellent", "fantastic"},
	"anger":    {"angry", "frustrated", "annoyed", "furious", "irritated", "outraged", "terrible", "awful", "horrible", "disgusting"},
	"sadness":  {"sad", "disappointed", "depressed", "upset", "heartbroken", "miserable", "poor", "bad", "worse", "worst"},
	"fear":     {"afraid", "scared", "worried", "anxious", "nervous", "concerned", "uncertain", "doubtful"},
	"surprise": {"surprised", "shocked", "amazed", "astonished", "unexpected", "wow", "incredible"},
	"disgust":  {"disgusted", "revolting", "repulsive", "gross", "nasty", "yuck"},
}

// EmotionIndicators scores six emotion categories by keyword density:
// total occurrences of a category's keywords divided by the size of its
// keyword set. Every category is present in the output, zero when
// nothing matched.
func EmotionIndicators(text string) map[string]float64 {
	textLower := strings.ToLower(text)
	emotions := make(map[string]float64, len(emotionKeywords))

	for emotion, keywords := range emotionKeywords {
		matches := 0
		for _, keyword := range keywords {
			matches += strings.Count(textLower, keyword)
		}
		emotions[emotion] = float64(matches) / float64(len(keywords))
	}

	return emotions
}
