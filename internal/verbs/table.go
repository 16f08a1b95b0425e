package verbs

// File table.go holds the verb table itself. Entries are grouped by variant.
//
// A note on the "$" stem: it conjugates by appending a plain "s", so verbs
// whose third-person form needs "es" or "ies" (kiss, punch, flex) get a
// Paired or Conditional entry with both forms written out instead.

// Verbs is the closed soul verb table.
var Verbs = map[string]Entry{
	// simple glances and expressions, all rendered as "verb$ \nHOW \nAT"
	"smile":   {Def: Default{At: " at"}, DefaultAdverb: "happily"},
	"grin":    {Def: Default{At: " at"}, DefaultAdverb: "evilly"},
	"beam":    {Def: Default{At: " at"}, DefaultAdverb: "happily"},
	"laugh":   {Def: Default{At: " at"}},
	"giggle":  {Def: Default{At: " at"}},
	"chuckle": {Def: Default{At: " at"}},
	"smirk":   {Def: Default{At: " at"}},
	"frown":   {Def: Default{At: " at"}},
	"scowl":   {Def: Default{At: " at"}, DefaultAdverb: "darkly"},
	"sneer":   {Def: Default{At: " at"}},
	"growl":   {Def: Default{At: " at"}},
	"snarl":   {Def: Default{At: " at"}},
	"grunt":   {Def: Default{At: " at"}},
	"wave":    {Def: Default{At: " at"}, DefaultAdverb: "happily"},
	"wink":    {Def: Default{At: " at"}, DefaultAdverb: "slyly"},
	"nod":     {Def: Default{At: " at"}},
	"yawn":    {Def: Default{At: " at"}},
	"swear":   {Def: Default{At: " at"}},
	"squint":  {Def: Default{At: " at"}, DefaultAdverb: "suspiciously"},
	"sniff":   {Def: Default{At: " at"}},
	"snicker": {Def: Default{At: " at"}},
	"drool":   {Def: Default{At: " at"}},
	"stare":   {Def: Default{At: " at"}},
	"bark":    {Def: Default{At: " at"}, DefaultAdverb: "loudly"},
	"cheer":   {Def: Default{At: " for"}, DefaultAdverb: "enthusiastically"},
	"gloat":   {Def: Default{At: " over"}},

	// verbs aimed at someone: "verb$<ext> \nWHO \nHOW"
	"hug":          {Def: Targeted{}},
	"embrace":      {Def: Targeted{}, DefaultAdverb: "warmly"},
	"cuddle":       {Def: Targeted{Ext: " up against"}},
	"comfort":      {Def: Targeted{}},
	"congratulate": {Def: Targeted{}},
	"thank":        {Def: Targeted{}, DefaultAdverb: "gratefully"},
	"salute":       {Def: Targeted{}},
	"greet":        {Def: Targeted{}},
	"welcome":      {Def: Targeted{}, DefaultAdverb: "warmly"},
	"admire":       {Def: Targeted{}},
	"forgive":      {Def: Targeted{}},
	"mock":         {Def: Targeted{}},
	"tackle":       {Def: Targeted{}},

	// physical contact: "verb$<ext> \nWHO \nHOW \nWHERE"
	"kick":   {Def: Physical{}},
	"slap":   {Def: Physical{}, DefaultWhere: "in the face"},
	"pat":    {Def: Physical{}, DefaultAdverb: "gently", DefaultWhere: "on the head"},
	"poke":   {Def: Physical{}, DefaultWhere: "in the side"},
	"prod":   {Def: Physical{}, DefaultWhere: "in the side"},
	"tap":    {Def: Physical{}, DefaultWhere: "on the shoulder"},
	"nudge":  {Def: Physical{}, DefaultAdverb: "gently"},
	"bonk":   {Def: Physical{}, DefaultWhere: "on the head"},
	"stroke": {Def: Physical{}, DefaultAdverb: "gently"},
	"tickle": {Def: Physical{}},
	"bite":   {Def: Physical{}},
	"shove":  {Def: Physical{}},
	"lick":   {Def: Physical{}},

	// solitary gestures: "verb$<ext> \nHOW"
	"sigh":    {Def: Short{}},
	"sneeze":  {Def: Short{}, DefaultAdverb: "loudly"},
	"cough":   {Def: Short{}},
	"hiccup":  {Def: Short{}},
	"burp":    {Def: Short{}, DefaultAdverb: "rudely"},
	"snore":   {Def: Short{}, DefaultAdverb: "loudly"},
	"whistle": {Def: Short{Ext: " a happy tune"}},
	"shrug":   {Def: Short{}},
	"pout":    {Def: Short{}},
	"sulk":    {Def: Short{Ext: " in the corner"}},
	"blink":   {Def: Short{}},
	"gasp":    {Def: Short{}},
	"groan":   {Def: Short{}},
	"moan":    {Def: Short{}},
	"grumble": {Def: Short{}},
	"shiver":  {Def: Short{}},
	"tremble": {Def: Short{}},
	"twiddle": {Def: Short{Ext: " \nYOUR thumbs"}},
	"stomp":   {Def: Short{Ext: " \nYOUR feet"}, DefaultAdverb: "angrily"},

	// speech: alternate templates with and without an addressee
	"say":       {Def: Personal{Alone: "say$ \nWHAT \nHOW", WithWho: "say$ \nWHAT to \nWHO \nHOW"}, DefaultMessage: "nothing"},
	"whisper":   {Def: Personal{Alone: "whisper$ \nMSG \nHOW", WithWho: "whisper$ \nMSG to \nWHO \nHOW"}},
	"mutter":    {Def: Personal{Alone: "mutter$ \nMSG \nHOW", WithWho: "mutter$ \nMSG to \nWHO \nHOW"}},
	"mumble":    {Def: Personal{Alone: "mumble$ \nMSG \nHOW", WithWho: "mumble$ \nMSG to \nWHO \nHOW"}},
	"shout":     {Def: Personal{Alone: "shout$ \nMSG \nHOW", WithWho: "shout$ \nMSG at \nWHO \nHOW"}, DefaultAdverb: "loudly"},
	"scream":    {Def: Personal{Alone: "scream$ \nMSG \nHOW", WithWho: "scream$ \nMSG at \nWHO \nHOW"}, DefaultAdverb: "loudly"},
	"sing":      {Def: Personal{Alone: "sing$ \nWHAT \nHOW", WithWho: "sing$ \nWHAT to \nWHO \nHOW"}, DefaultMessage: "a song"},
	"hum":       {Def: Personal{Alone: "hum$ \nWHAT \nHOW", WithWho: "hum$ \nWHAT to \nWHO \nHOW"}, DefaultMessage: "a tune"},
	"chant":     {Def: Personal{Alone: "chant$ \nWHAT \nHOW", WithWho: "chant$ \nWHAT at \nWHO \nHOW"}, DefaultMessage: "ohm"},
	"apologize": {Def: Personal{Alone: "apologize$ \nHOW", WithWho: "apologize$ to \nWHO \nHOW"}, DefaultAdverb: "sincerely"},
	"pray":      {Def: Personal{Alone: "pray$ \nHOW", WithWho: "pray$ for \nWHO \nHOW"}},

	// alternate full-template pairs keyed on whether a target was given
	"wait":   {Def: Conditional{Actor: "wait \nHOW", Room: "waits \nHOW", ActorWho: "wait \nHOW for \nWHO", RoomWho: "waits \nHOW for \nWHO"}},
	"listen": {Def: Conditional{Actor: "listen \nHOW", Room: "listens \nHOW", ActorWho: "listen to \nWHO \nHOW", RoomWho: "listens to \nWHO \nHOW"}},
	"ponder": {Def: Conditional{Actor: "ponder \nHOW", Room: "ponders \nHOW", ActorWho: "ponder \nHOW about \nWHO", RoomWho: "ponders \nHOW about \nWHO"}, DefaultAdverb: "thoughtfully"},
	"dance":  {Def: Conditional{Actor: "dance \nHOW", Room: "dances \nHOW", ActorWho: "dance with \nWHO \nHOW", RoomWho: "dances with \nWHO \nHOW"}},
	"watch":  {Def: Conditional{Actor: "watch the surroundings \nHOW", Room: "watches the surroundings \nHOW", ActorWho: "watch \nWHO \nHOW", RoomWho: "watches \nWHO \nHOW"}},

	// two full templates, written out in both persons
	"ask":   {Def: Paired{Actor: "ask \nWHO \nWHAT", Room: "asks \nWHO \nWHAT"}, DefaultMessage: "a question"},
	"tell":  {Def: Paired{Actor: "tell \nWHO \nWHAT", Room: "tells \nWHO \nWHAT"}, DefaultMessage: "something"},
	"beg":   {Def: Paired{Actor: "beg \nWHO \nWHAT", Room: "begs \nWHO \nWHAT"}, DefaultMessage: "for mercy"},
	"hold":  {Def: Paired{Actor: "hold \nPOSS hand \nHOW", Room: "holds \nPOSS hand \nHOW"}},
	"peer":  {Def: Paired{Actor: "peer \nHOW at \nWHO, wondering what \nSUBJ \nIS up to", Room: "peers \nHOW at \nWHO, wondering what \nSUBJ \nIS up to"}},
	"kiss":  {Def: Paired{Actor: "kiss \nWHO \nHOW \nWHERE", Room: "kisses \nWHO \nHOW \nWHERE"}, DefaultWhere: "on the cheek"},
	"punch": {Def: Paired{Actor: "punch \nWHO \nHOW \nWHERE", Room: "punches \nWHO \nHOW \nWHERE"}, DefaultWhere: "in the stomach"},
	"pinch": {Def: Paired{Actor: "pinch \nWHO \nHOW \nWHERE", Room: "pinches \nWHO \nHOW \nWHERE"}},
	"flex":  {Def: Paired{Actor: "flex \nYOUR muscles \nHOW", Room: "flexes \nYOUR muscles \nHOW"}, DefaultAdverb: "proudly"},

	// single fixed templates
	"point":  {Def: Simple{Action: "point$ \nHOW \nAT", At: " at"}},
	"think":  {Def: Simple{Action: "think$ \nHOW \nAT", At: " about"}},
	"bounce": {Def: Simple{Action: "bounce$ \nHOW around"}, DefaultAdverb: "playfully"},
	"jump":   {Def: Simple{Action: "jump$ up and down \nHOW"}},
	"spin":   {Def: Simple{Action: "spin$ around \nHOW"}},
	"faint":  {Def: Simple{Action: "faint$ \nHOW"}},
}
