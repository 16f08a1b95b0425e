package lang

// File adverbs.go holds the closed adverb dictionary. The list must be kept
// sorted; membership and prefix search are done by bisection.

import "sort"

// adverbs is the closed dictionary of adverbs the soul accepts. Sorted.
var adverbs = []string{
	"absently",
	"accusingly",
	"adamantly",
	"admiringly",
	"adoringly",
	"affectionately",
	"aggressively",
	"agreeably",
	"aimlessly",
	"airily",
	"amusedly",
	"angrily",
	"anxiously",
	"apologetically",
	"appreciatively",
	"approvingly",
	"ardently",
	"arrogantly",
	"attentively",
	"awkwardly",
	"bashfully",
	"bleakly",
	"blindly",
	"blissfully",
	"boldly",
	"brazenly",
	"breathlessly",
	"briefly",
	"brightly",
	"briskly",
	"brutally",
	"busily",
	"calmly",
	"carefully",
	"carelessly",
	"casually",
	"cautiously",
	"charmingly",
	"cheekily",
	"cheerfully",
	"childishly",
	"civilly",
	"clearly",
	"clumsily",
	"coldly",
	"comfortably",
	"completely",
	"confidently",
	"contentedly",
	"coolly",
	"courteously",
	"coyly",
	"crazily",
	"cruelly",
	"curiously",
	"cynically",
	"daintily",
	"dangerously",
	"daringly",
	"darkly",
	"dearly",
	"decisively",
	"defiantly",
	"dejectedly",
	"deliberately",
	"delicately",
	"delightedly",
	"demandingly",
	"demurely",
	"desperately",
	"devilishly",
	"diabolically",
	"disappointedly",
	"disapprovingly",
	"discreetly",
	"disgustedly",
	"dismally",
	"distantly",
	"dotingly",
	"doubtfully",
	"dreamily",
	"dubiously",
	"eagerly",
	"earnestly",
	"easily",
	"ecstatically",
	"elegantly",
	"eloquently",
	"emphatically",
	"encouragingly",
	"endearingly",
	"energetically",
	"enthusiastically",
	"enviously",
	"evilly",
	"exactly",
	"excitedly",
	"expectantly",
	"expertly",
	"exuberantly",
	"faintly",
	"fairly",
	"faithfully",
	"fanatically",
	"fearfully",
	"ferociously",
	"fervently",
	"fiercely",
	"firmly",
	"flatly",
	"fondly",
	"foolishly",
	"forcefully",
	"formally",
	"frantically",
	"freely",
	"frostily",
	"fully",
	"furiously",
	"generously",
	"gently",
	"gleefully",
	"gloomily",
	"gracefully",
	"graciously",
	"gratefully",
	"gravely",
	"greedily",
	"grimly",
	"grumpily",
	"guiltily",
	"happily",
	"harshly",
	"hastily",
	"heartily",
	"heavily",
	"helpfully",
	"helplessly",
	"hesitantly",
	"honestly",
	"hopefully",
	"hopelessly",
	"humbly",
	"hungrily",
	"hysterically",
	"icily",
	"idiotically",
	"impatiently",
	"impishly",
	"innocently",
	"inquisitively",
	"insanely",
	"instantly",
	"intensely",
	"interestedly",
	"ironically",
	"irritably",
	"jealously",
	"jokingly",
	"jovially",
	"joyfully",
	"joyously",
	"jubilantly",
	"kindly",
	"knowingly",
	"lazily",
	"lightly",
	"longingly",
	"loudly",
	"lovingly",
	"loyally",
	"madly",
	"magnificently",
	"maliciously",
	"meaningfully",
	"meekly",
	"melodramatically",
	"menacingly",
	"mercilessly",
	"merrily",
	"mightily",
	"mischievously",
	"miserably",
	"mockingly",
	"modestly",
	"morosely",
	"mournfully",
	"mysteriously",
	"nastily",
	"naughtily",
	"nervously",
	"nicely",
	"noisily",
	"nonchalantly",
	"obediently",
	"obligingly",
	"obnoxiously",
	"oddly",
	"ominously",
	"openly",
	"outrageously",
	"painfully",
	"passionately",
	"patiently",
	"peacefully",
	"pensively",
	"perfectly",
	"personally",
	"persuasively",
	"playfully",
	"pleasantly",
	"politely",
	"pompously",
	"proudly",
	"provocatively",
	"quickly",
	"quietly",
	"quizzically",
	"rapidly",
	"rapturously",
	"recklessly",
	"reluctantly",
	"remorsefully",
	"repeatedly",
	"resignedly",
	"respectfully",
	"reverently",
	"romantically",
	"roughly",
	"rudely",
	"ruthlessly",
	"sadistically",
	"sadly",
	"sarcastically",
	"sardonically",
	"savagely",
	"scornfully",
	"secretly",
	"sedately",
	"seductively",
	"sensually",
	"seriously",
	"shamelessly",
	"sheepishly",
	"shyly",
	"silently",
	"sincerely",
	"skeptically",
	"sleepily",
	"slowly",
	"slyly",
	"smugly",
	"softly",
	"solemnly",
	"somberly",
	"soothingly",
	"sourly",
	"stealthily",
	"sternly",
	"stoically",
	"stubbornly",
	"stupidly",
	"suavely",
	"subtly",
	"suspiciously",
	"sweetly",
	"sympathetically",
	"tearfully",
	"teasingly",
	"tenderly",
	"tensely",
	"tentatively",
	"terribly",
	"thankfully",
	"thoughtfully",
	"tightly",
	"timidly",
	"tiredly",
	"tolerantly",
	"triumphantly",
	"uncontrollably",
	"understandingly",
	"uneasily",
	"unhappily",
	"unwillingly",
	"vaguely",
	"viciously",
	"victoriously",
	"vigorously",
	"violently",
	"warily",
	"warmly",
	"weakly",
	"wearily",
	"wickedly",
	"wildly",
	"wisely",
	"wistfully",
	"wolfishly",
	"wryly",
}

// IsAdverb returns whether the word is in the adverb dictionary.
func IsAdverb(word string) bool {
	i := sort.SearchStrings(adverbs, word)
	return i < len(adverbs) && adverbs[i] == word
}

// AdverbsByPrefix returns up to max adverbs that start with the given prefix,
// in dictionary order. A max below 1 is treated as 5. A word that is itself
// an adverb counts as its own (first) match.
func AdverbsByPrefix(prefix string, max int) []string {
	if max < 1 {
		max = 5
	}

	var found []string
	i := sort.SearchStrings(adverbs, prefix)
	for i < len(adverbs) && len(found) < max {
		if len(adverbs[i]) < len(prefix) || adverbs[i][:len(prefix)] != prefix {
			break
		}
		found = append(found, adverbs[i])
		i++
	}

	return found
}

// Adverbs returns the number of entries in the adverb dictionary. It exists
// mostly so that callers and tests can sanity-check the table without gaining
// access to it.
func Adverbs() int {
	return len(adverbs)
}
