package services

import (
	"regexp"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
)

// riskRule pairs a category with its detection inputs: an exact-token
// keyword set matched against the tokenized lower-cased body, and a
// case-insensitive pattern matched against the original body.
type riskRule struct {
	Category models.RiskCategory
	Keywords map[string]struct{}
	Pattern  *regexp.Regexp
}

// riskRules is evaluated in order; the first rule to fire assigns the
// category. Fixed configuration, never mutated after process start.
var riskRules = []riskRule{
	{
		Category: models.RiskCategoryFraud,
		Keywords: keywordSet(
			"lottery", "winner", "prize", "jackpot", "inheritance",
			"unclaimed", "refund", "giveaway", "scam", "bitcoin",
			"crypto", "investment", "guaranteed", "otp", "pin",
		),
		Pattern: regexp.MustCompile(`(?i)(won|claim|verify|confirm).{0,40}(prize|lottery|reward|account|card)|(?i)(bank|account|card).{0,40}(suspend|block|expire)`),
	},
	{
		Category: models.RiskCategoryCriminal,
		Keywords: keywordSet(
			"drugs", "weed", "cocaine", "heroin", "meth", "gun",
			"pistol", "ammo", "smuggle", "stolen", "counterfeit",
			"ransom", "bribe", "launder",
		),
		Pattern: regexp.MustCompile(`(?i)(sell|buy|deal|move|ship).{0,30}(drugs?|weapons?|guns?|stolen goods)`),
	},
	{
		Category: models.RiskCategoryCyberbullying,
		Keywords: keywordSet(
			"loser", "ugly", "stupid", "idiot", "worthless", "pathetic",
			"freak", "fat", "dumb", "hate",
		),
		Pattern: regexp.MustCompile(`(?i)(nobody|no one).{0,20}(likes|wants|cares about) you|(?i)you('re| are).{0,20}(worthless|pathetic|a (loser|freak|joke))`),
	},
	{
		Category: models.RiskCategoryThreat,
		Keywords: keywordSet(
			"kill", "hurt", "attack", "bomb", "shoot", "stab",
			"destroy", "die", "revenge", "beware",
		),
		Pattern: regexp.MustCompile(`(?i)(i|we)('ll| will| am going to).{0,30}(kill|hurt|find|get|destroy) (you|your)|(?i)watch your back`),
	},
}

// sentimentLexicon maps lower-cased tokens to signed polarity weights.
// The body's score is the sum over its tokens; scores below
// sentimentThreshold flag the message as negative sentiment.
var sentimentLexicon = map[string]int{
	// negative
	"hate":       -3,
	"horrible":   -3,
	"terrible":   -3,
	"awful":      -3,
	"disgusting": -3,
	"miserable":  -3,
	"worst":      -3,
	"angry":      -2,
	"furious":    -3,
	"sad":        -2,
	"depressed":  -3,
	"cry":        -2,
	"crying":     -2,
	"useless":    -2,
	"hopeless":   -3,
	"failure":    -2,
	"regret":     -2,
	"sorry":      -1,
	"bad":        -1,
	"annoying":   -1,
	"sick":       -1,
	"never":      -1,
	"alone":      -2,
	"pain":       -2,
	"hurt":       -2,
	"broken":     -2,

	// positive
	"love":      3,
	"great":     3,
	"excellent": 3,
	"wonderful": 3,
	"amazing":   3,
	"awesome":   3,
	"happy":     2,
	"glad":      2,
	"good":      2,
	"nice":      2,
	"thanks":    2,
	"thank":     2,
	"best":      2,
	"fun":       1,
	"fine":      1,
	"ok":        1,
	"okay":      1,
}

const sentimentThreshold = -2

func keywordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
