package generator

// dictionary holds common lowercase English words in a fixed order.
var dictionary = []string{
	"the", "and", "be", "to", "of", "a", "in", "that", "have", "it",
	"for", "not", "on", "with", "he", "as", "you", "do", "at", "this",
	"but", "his", "by", "from", "they", "we", "say", "her", "she", "or",
	"an", "will", "my", "one", "all", "would", "there", "their", "what", "so",
	"up", "out", "if", "about", "who", "get", "which", "go", "me", "when",
	"make", "can", "like", "time", "no", "just", "him", "know", "take", "people",
	"into", "year", "your", "good", "some", "could", "them", "see", "other", "than",
	"then", "now", "look", "only", "come", "its", "over", "think", "also", "back",
	"after", "use", "two", "how", "our", "work", "first", "well", "way", "even",
	"new", "want", "because", "any", "these", "give", "day", "most", "us", "is",
	"was", "are", "been", "has", "had", "were", "said", "did", "having", "may",
	"should", "find", "long", "down", "little", "world", "still", "own", "man", "here",
	"thing", "many", "tell", "very", "much", "before", "through", "years", "where", "each",
	"old", "right", "big", "high", "different", "small", "large", "next", "early", "young",
	"important", "few", "public", "bad", "same", "able", "woman", "plan", "report", "better",
	"best", "however", "lead", "social",
}
