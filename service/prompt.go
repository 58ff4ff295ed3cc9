package service

import (
	"fmt"
	"time"
)

// TimestampLayout is how the current UTC time appears in the prompt.
const TimestampLayout = "2006-01-02 15:04:05"

const promptTemplate = `You are a helpful assistant with knowledge about rockets and space.
You have access to up-to-date information about upcoming rocket launches that the user does not directly see.

The current UTC date and time is: %s

Here is the JSON data about the next 5 rocket launches:
%s

When presenting launch information:
- If a launch name is "TBD" or similar placeholder text, present it as "Unnamed Mission" or describe it by its rocket/provider instead of using the placeholder
- For unnamed launches, you can refer to them as "[Rocket Name] Mission" or "Unnamed [Provider] Launch"
- Always include all available mission details even for unnamed launches

Based strictly on this information, answer the following question. Only use details found in the data.
If the question cannot be answered using this data, respond that you can only answer questions about the upcoming launches you know about.

Question:
%s`

// ComposePrompt builds the prompt sent to the chat model.
// launchData and question are inserted verbatim.
func ComposePrompt(question, launchData string, now time.Time) string {
	return fmt.Sprintf(promptTemplate, now.UTC().Format(TimestampLayout), launchData, question)
}
