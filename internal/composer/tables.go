package composer

import "github.com/snippetly/song-snippetly/internal/analyzer"

// tableKey addresses one cell of a static content table.
type tableKey struct {
	language string
	mood     string
}

// textReplies holds the canned reply texts per language and mood.
var textReplies = map[tableKey][]string{
	{analyzer.LanguageEnglish, analyzer.MoodHappy}: {
		"That's amazing! I'm so happy for you! 🎉",
		"Wow, that sounds incredible! Tell me more!",
		"Your happiness is contagious! 😊",
	},
	{analyzer.LanguageEnglish, analyzer.MoodSad}: {
		"I'm sorry to hear that. I'm here if you need to talk.",
		"That sounds really tough. Sending you lots of love ❤️",
		"Take your time to feel better. You're not alone in this.",
	},
	{analyzer.LanguageEnglish, analyzer.MoodAngry}: {
		"I can understand why you'd feel that way.",
		"That does sound frustrating. Want to talk about it?",
		"Take a deep breath. We'll figure this out together.",
	},
	{analyzer.LanguageEnglish, analyzer.MoodRomantic}: {
		"That's so sweet! You two are perfect together ❤️",
		"Love is in the air! 💕",
		"Aww, that made my heart flutter! 🦋",
	},
	{analyzer.LanguageEnglish, analyzer.MoodProfessional}: {
		"Thank you for the update. I'll review this shortly.",
		"I appreciate your professional approach to this matter.",
		"Let's schedule a meeting to discuss this further.",
	},
	{analyzer.LanguageEnglish, analyzer.MoodNeutral}: {
		"Thanks for sharing that with me.",
		"I see what you mean.",
		"That's interesting. What do you think about it?",
	},
	{analyzer.LanguageHindi, analyzer.MoodHappy}: {
		"वाह! यह तो बहुत खुशी की बात है! 🎉",
		"बहुत बढ़िया! मुझे बहुत खुशी हुई।",
		"आपकी खुशी देखकर मेरा भी दिल खुश हो गया! 😊",
	},
	{analyzer.LanguageHindi, analyzer.MoodSad}: {
		"यह सुनकर बहुत दुख हुआ। मैं आपके साथ हूं।",
		"बहुत कठिन समय है। हिम्मत रखिए। ❤️",
		"समय लगेगा लेकिन सब ठीक हो जाएगा।",
	},
	{analyzer.LanguageHindi, analyzer.MoodNeutral}: {
		"आपकी बात समझ में आई।",
		"धन्यवाद, यह जानकारी देने के लिए।",
		"इस बारे में आप क्या सोचते हैं?",
	},
	{analyzer.LanguageHinglish, analyzer.MoodHappy}: {
		"Yaar, that's so awesome! Main kitna khush hun! 🎉",
		"Wow bhai, bahut badhiya news hai ye!",
		"Arre wah! Your happiness dekh kar mera bhi mood up ho gaya! 😊",
	},
	{analyzer.LanguageHinglish, analyzer.MoodSad}: {
		"Yaar, bahut sad feel ho raha hai ye sun kar. I'm here for you.",
		"Bro, tough time hai but sab theek ho jayega. Don't worry ❤️",
		"Take care yaar. Kabhi bhi need ho toh message kar dena.",
	},
	{analyzer.LanguageHinglish, analyzer.MoodNeutral}: {
		"Hmm, samajh gaya. Thanks for sharing!",
		"Acha, interesting perspective hai ye.",
		"Cool, tumhara kya opinion hai iske baare mein?",
	},
}

// songEntry is a curated song suggestion. Song suggestions are keyed by
// mood only; the catalog is the same across languages.
type songEntry struct {
	title      string
	artist     string
	lyrics     string
	coverImage string
	spotifyURL string
}

var songSuggestions = map[string][]songEntry{
	analyzer.MoodHappy: {
		{
			title:      "Happy",
			artist:     "Pharrell Williams",
			lyrics:     "Because I'm happy, clap along if you feel like a room without a roof",
			coverImage: "https://via.placeholder.com/300x300/FFD700/000000?text=Happy",
			spotifyURL: "https://open.spotify.com/track/60nZcImufyMA1MKQY3dcCH",
		},
		{
			title:      "Good as Hell",
			artist:     "Lizzo",
			lyrics:     "I do my hair toss, check my nails, baby how you feelin'?",
			coverImage: "https://via.placeholder.com/300x300/FF69B4/000000?text=Good+as+Hell",
			spotifyURL: "https://open.spotify.com/track/1WkMMavIMc4JZ8cfMmxHkI",
		},
	},
	analyzer.MoodSad: {
		{
			title:      "Someone Like You",
			artist:     "Adele",
			lyrics:     "Never mind, I'll find someone like you, I wish nothing but the best for you too",
			coverImage: "https://via.placeholder.com/300x300/4682B4/FFFFFF?text=Someone+Like+You",
			spotifyURL: "https://open.spotify.com/track/4y4VO05kYgAA6Qw84sp7Ks",
		},
	},
	analyzer.MoodRomantic: {
		{
			title:      "Perfect",
			artist:     "Ed Sheeran",
			lyrics:     "Baby, I'm dancing in the dark with you between my arms",
			coverImage: "https://via.placeholder.com/300x300/FF1493/FFFFFF?text=Perfect",
			spotifyURL: "https://open.spotify.com/track/0tgVpDi06FyKpA1z0VMD4v",
		},
	},
	analyzer.MoodNeutral: {
		{
			title:      "Counting Stars",
			artist:     "OneRepublic",
			lyrics:     "Lately I've been losing sleep, dreaming about the things that we could be",
			coverImage: "https://via.placeholder.com/300x300/32CD32/000000?text=Counting+Stars",
			spotifyURL: "https://open.spotify.com/track/2tpWsVSb9UEmDRxAl1zhX1",
		},
	},
}

// poemEntry is a short poem with attribution.
type poemEntry struct {
	text   string
	author string
}

var poems = map[tableKey][]poemEntry{
	{analyzer.LanguageEnglish, analyzer.MoodRomantic}: {
		{
			text:   "You are my sun, my moon, and all my stars.\nIn your eyes, I find my home,\nIn your heart, I find my peace.",
			author: "Anonymous",
		},
	},
	{analyzer.LanguageEnglish, analyzer.MoodSad}: {
		{
			text:   "The wound is the place where the Light enters you.\nEven in darkness, there is hope,\nEven in sorrow, there is beauty.",
			author: "Rumi",
		},
	},
	{analyzer.LanguageEnglish, analyzer.MoodHappy}: {
		{
			text:   "Life is a beautiful adventure,\nFilled with moments of pure joy,\nEmbrace each smile, each laugh, each tear.",
			author: "Anonymous",
		},
	},
	{analyzer.LanguageHindi, analyzer.MoodRomantic}: {
		{
			text:   "तुम हो तो जहां में बहार है,\nतुम्हारे बिना सब बेकार है,\nमोहब्बत में तुम्हारी मेरा क्या कसूर है।",
			author: "अज्ञात",
		},
	},
}

var taglines = map[tableKey][]string{
	{analyzer.LanguageEnglish, analyzer.MoodHappy}: {
		"Life is good! 🌟",
		"Happiness looks good on you!",
		"Keep shining bright! ✨",
	},
	{analyzer.LanguageEnglish, analyzer.MoodSad}: {
		"This too shall pass 💙",
		"You're stronger than you know",
		"Tomorrow is a new day 🌅",
	},
	{analyzer.LanguageEnglish, analyzer.MoodRomantic}: {
		"Love wins everything ❤️",
		"You're my favorite person 💕",
		"Together is my favorite place to be",
	},
	{analyzer.LanguageEnglish, analyzer.MoodNeutral}: {
		"Keep going! 💪",
		"You've got this!",
		"One step at a time 🚶",
	},
	{analyzer.LanguageHinglish, analyzer.MoodHappy}: {
		"Life mein sab kuch perfect hai! ✨",
		"Khushi ki yeh baat! 🎉",
		"Zindagi beautiful hai yaar! 🌈",
	},
	{analyzer.LanguageHinglish, analyzer.MoodSad}: {
		"Sab theek ho jayega, tension mat lo 💙",
		"Time heal kar deta hai sab kuch",
		"Strong rehna, main hun na! 💪",
	},
}

// lookup walks an explicit fallback chain and returns the first table cell
// with content. Keeping the chain as an ordered list makes the fallback
// order a testable contract rather than accidental map traversal.
func lookup[T any](table map[tableKey][]T, chain []tableKey) []T {
	for _, key := range chain {
		if entries, ok := table[key]; ok && len(entries) > 0 {
			return entries
		}
	}
	return nil
}

// textChain: same language neutral first, then English neutral.
func textChain(language, mood string) []tableKey {
	return []tableKey{
		{language, mood},
		{language, analyzer.MoodNeutral},
		{analyzer.LanguageEnglish, analyzer.MoodNeutral},
	}
}

// poetryChain: fall back to English for the same mood; no neutral poems
// exist, so an unmatched mood yields nothing.
func poetryChain(language, mood string) []tableKey {
	return []tableKey{
		{language, mood},
		{analyzer.LanguageEnglish, mood},
	}
}

// taglineChain: English for the same mood, then English neutral.
func taglineChain(language, mood string) []tableKey {
	return []tableKey{
		{language, mood},
		{analyzer.LanguageEnglish, mood},
		{analyzer.LanguageEnglish, analyzer.MoodNeutral},
	}
}
