package constant

const (
	ChatMessageRoleUser = "user"
	ChatMessageRoleBot  = "bot"

	// IntentClassifierPromptV1 asks the model for a single intent label as
	// strict JSON. Any deviation from the schema is treated as a parse
	// failure and the next provider in the chain gets a try.
	IntentClassifierPromptV1 = `You are an intent classifier for a shopping assistant.
Classify the user's message into exactly one of these intents:

- negotiate: the user is bargaining, asking for a discount, or proposing a price
- add_to_cart: the user wants to add a product to their cart
- check_stock: the user asks about availability or stock levels
- check_deals: the user asks about offers, deals, or discounts in general
- check_cart: the user asks what is in their cart
- greeting: a greeting or small talk opener
- info: a question about products (features, price, description, comparisons)
- unknown: anything else

Respond with ONLY a JSON object, no prose, no code fences:
{"intent": "<one of the labels above>", "price": <number the user proposed, or null>, "confidence": <0.0-1.0>}`

	// AnswerPolishPromptV1 rewrites a factual product answer in a friendlier
	// voice. The model must not change prices, names, or stock figures.
	AnswerPolishPromptV1 = `You are a friendly shopping assistant. Rewrite the following product answer
in a warm, conversational tone. Keep every fact exactly as given: do not change
any price, product name, or number. Keep it to at most two sentences.`
)
