package guide

import "regexp"

// Built-in guides. Tips and rules follow each provider's published prompting
// guidance; rules strip polite filler that spends tokens without changing
// what the model is asked to do.

var llamaGuide = &Guide{
	Name:   "Llama",
	Source: "Meta AI",
	URL:    "https://www.llama.com/docs/how-to-guides/prompting/",
	Tips: []Tip{
		{
			Title:       "Be Clear and Concise",
			Description: "Use clear, concise language in your prompts. Avoid jargon and technical terms that might confuse the model.",
			Example: Example{
				Before: "Could you please kindly help me create a detailed analysis of the quarterly financial report that includes all of the important metrics and insights for the executive team, if you don't mind?",
				After:  "Analyze quarterly financial report. Include key metrics and insights for executives.",
			},
		},
		{
			Title:       "Use Explicit Instructions",
			Description: "Detailed, explicit instructions produce better results than open-ended prompts.",
			Example: Example{
				Before: "Tell me about quantum computing.",
				After:  "Explain quantum computing principles to me like I'm a computer science undergraduate. Focus on qubits, superposition, and quantum gates.",
			},
		},
		{
			Title:       "Use Stylistic Instructions",
			Description: "You can control the style of response with explicit stylistic instructions.",
			Example: Example{
				Before: "Write about climate change.",
				After:  "Explain this to me like a topic on a children's educational network show teaching elementary students.",
			},
		},
		{
			Title:       "Apply Formatting Instructions",
			Description: "Specify the format you want the answer in.",
			Example: Example{
				Before: "List the top factors affecting climate change.",
				After:  "List the top factors affecting climate change. Use bullet points.",
			},
		},
		{
			Title:       "Apply Chain of Thought",
			Description: "For complex reasoning, ask the model to think step by step.",
			Example: Example{
				Before: "What is 25 × 16 + 12 × 4?",
				After:  "Calculate 25 × 16 + 12 × 4 step by step, showing your reasoning for each step.",
			},
		},
	},
	Rules: []Rule{
		{Pattern: regexp.MustCompile(`Could you please\s+`), Replacement: ""},
		{Pattern: regexp.MustCompile(`I would like you to\s+`), Replacement: ""},
		{Pattern: regexp.MustCompile(`If you don't mind,\s+`), Replacement: ""},
		{Pattern: regexp.MustCompile(`It would be great if you could\s+`), Replacement: ""},
		{Pattern: regexp.MustCompile(`kindly\s+`), Replacement: ""},
		{Pattern: regexp.MustCompile(`Please\s+`), Replacement: ""},
		{Pattern: regexp.MustCompile(`\s+if possible`), Replacement: ""},
		{Pattern: regexp.MustCompile(`Can you\s+`), Replacement: ""},
		{Pattern: regexp.MustCompile(`Would you be able to\s+`), Replacement: ""},
	},
}

var claudeGuide = &Guide{
	Name:   "Claude",
	Source: "Anthropic",
	URL:    "https://docs.anthropic.com/en/docs/build-with-claude/prompt-engineering/overview",
	Tips: []Tip{
		{
			Title:       "Be Clear and Direct",
			Description: "Be clear and specific about what you want Claude to do.",
			Example: Example{
				Before: "I'm wondering if you might be able to tell me a bit about AI ethics?",
				After:  "Explain the three most important principles of AI ethics.",
			},
		},
		{
			Title:       "Use Examples (Multishot Prompting)",
			Description: "Include 3-5 diverse, relevant examples to show Claude exactly what you want.",
			Example: Example{
				Before: "Analyze this customer feedback and categorize the issues.",
				After:  "Analyze this customer feedback and categorize the issues. Here's an example:\n<example>\nInput: The new dashboard is a mess! It takes forever to load, and I can't find the export button. Fix this ASAP!\nCategory: UI/UX, Performance\nSentiment: Negative\nPriority: High\n</example>",
			},
		},
		{
			Title:       "Let Claude Think (Chain of Thought)",
			Description: "For complex problems, ask Claude to work through its reasoning step by step.",
			Example: Example{
				Before: "Is 17077 a prime number?",
				After:  "Think through whether 17077 is a prime number step by step.",
			},
		},
		{
			Title:       "Use XML Tags",
			Description: "Structure your prompt with XML tags to clearly separate different components.",
			Example: Example{
				Before: "Summarize the following text: Climate change is a global challenge...",
				After:  "<context>Climate change is a global challenge...</context>\n<task>Summarize the above text in 3 bullet points.</task>",
			},
		},
		{
			Title:       "Give Claude a Role (System Prompts)",
			Description: "Assign Claude a specific role to frame its perspective and expertise.",
			Example: Example{
				Before: "Explain how to create a REST API.",
				After:  "You are an experienced software engineering mentor. Explain how to create a REST API to a junior developer.",
			},
		},
	},
	Rules: []Rule{
		{Pattern: regexp.MustCompile(`I'm wondering if you might be able to\s+`), Replacement: ""},
		{Pattern: regexp.MustCompile(`I was hoping you could\s+`), Replacement: ""},
		{Pattern: regexp.MustCompile(`Could you possibly\s+`), Replacement: ""},
		{Pattern: regexp.MustCompile(`If it's not too much trouble,\s+`), Replacement: ""},
		{Pattern: regexp.MustCompile(`When you get a chance,\s+`), Replacement: ""},
	},
}

var gptGuide = &Guide{
	Name:   "GPT",
	Source: "OpenAI",
	URL:    "https://platform.openai.com/docs/guides/prompt-engineering",
	Tips: []Tip{
		{
			Title:       "Write Clear and Specific Instructions",
			Description: "Use clear and specific instructions, and be explicit about what you want.",
			Example: Example{
				Before: "Tell me about France.",
				After:  "Provide a brief overview of France, including its geography, population, government, and two major historical events.",
			},
		},
		{
			Title:       "Use Delimiters",
			Description: "Use delimiters to clearly indicate distinct parts of the input.",
			Example: Example{
				Before: "Summarize the text: France is a country in Western Europe...",
				After:  "Summarize the text delimited by triple backticks:\n```France is a country in Western Europe...```",
			},
		},
		{
			Title:       "Use Few-Shot Prompting",
			Description: "Provide examples of successful executions of the task you want performed.",
			Example: Example{
				Before: "Classify this review: 'The food was amazing!'",
				After:  "Classify the sentiment of the following reviews as positive, negative, or neutral.\n\nReview: 'The service was terrible.'\nSentiment: negative\n\nReview: 'The food was amazing!'\nSentiment:",
			},
		},
		{
			Title:       "Specify the Steps",
			Description: "Break down complex tasks into a sequence of steps.",
			Example: Example{
				Before: "Write a blog post about renewable energy.",
				After:  "Write a blog post about renewable energy by following these steps:\n1. Start with an attention-grabbing introduction\n2. Explain what renewable energy is\n3. Discuss 3 common types of renewable energy\n4. Provide statistics on renewable energy adoption\n5. Conclude with future prospects",
			},
		},
		{
			Title:       "Ask the Model to Evaluate Its Response",
			Description: "Ask the model to check whether its response meets the requirements.",
			Example: Example{
				Before: "Solve this math problem: If x² + 5x + 6 = 0, what is x?",
				After:  "Solve this math problem: If x² + 5x + 6 = 0, what is x? After providing your solution, verify that your answer is correct by substituting it back into the original equation.",
			},
		},
	},
	Rules: []Rule{
		{Pattern: regexp.MustCompile(`Can you\s+`), Replacement: ""},
		{Pattern: regexp.MustCompile(`Please\s+`), Replacement: ""},
		{Pattern: regexp.MustCompile(`I'd like you to\s+`), Replacement: ""},
		{Pattern: regexp.MustCompile(`Could you\s+`), Replacement: ""},
		{Pattern: regexp.MustCompile(`Would you mind\s+`), Replacement: ""},
	},
}

// builtinGuides maps provider keys to guides. "openai" is an alias key for
// the GPT guide: both keys return the same *Guide instance.
var builtinGuides = map[string]*Guide{
	"llama":  llamaGuide,
	"claude": claudeGuide,
	"gpt":    gptGuide,
	"openai": gptGuide,
}

// builtinKeys lists provider keys in display order.
var builtinKeys = []string{"llama", "claude", "gpt", "openai"}

// builtinAliases maps released model names to guide keys. Order matters:
// the prefix-match tier of resolution takes the first alias that prefixes
// the identifier.
var builtinAliases = []Alias{
	// Llama models
	{"llama-2", "llama"},
	{"llama-3", "llama"},
	{"llama-2-7b", "llama"},
	{"llama-2-13b", "llama"},
	{"llama-2-70b", "llama"},
	{"llama-3-8b", "llama"},
	{"llama-3-70b", "llama"},

	// Claude models
	{"claude-3-opus", "claude"},
	{"claude-3-sonnet", "claude"},
	{"claude-3-haiku", "claude"},
	{"claude-3-5-sonnet", "claude"},
	{"claude-2", "claude"},

	// GPT models
	{"gpt-3.5-turbo", "gpt"},
	{"gpt-4", "gpt"},
	{"gpt-4o", "gpt"},
	{"gpt-4-turbo", "gpt"},
	{"gpt-3.5", "gpt"},
}
