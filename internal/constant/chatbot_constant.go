package constant

// ChatErrorReplyText is the fixed assistant message appended when a chat call
// fails. The thread stays coherent; the raw error goes to the banner instead.
const ChatErrorReplyText = "Sorry, I encountered an error processing your question. Please try again."

// HandoffDelayMs is how long the page shows the success acknowledgment before
// switching to the chat view.
const HandoffDelayMs = 1500

// StatusChangedTopic is the in-process pub/sub topic for connectivity events.
const StatusChangedTopic = "CONNECTIVITY_STATUS_CHANGED"

// SuggestedQuestions are the one-click fillers shown on an empty thread.
var SuggestedQuestions = []string{
	"What is this video about?",
	"Summarize the main points",
	"What are the key takeaways?",
	"Explain the main topic in detail",
}
