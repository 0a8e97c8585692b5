// Package llm provides a provider-agnostic chat-completion client built on
// the gollm library (github.com/teilomillet/gollm).
//
// The package has three layers:
//
//   - ProviderAdapter: the interface a provider backend implements, plus the
//     GollmAdapter that wraps gollm.LLM for OpenAI, Anthropic and other
//     providers gollm supports.
//   - Client: provider routing and middleware. Requests name a provider
//     explicitly, or the client infers one from the model catalog.
//   - Retry and the typed error hierarchy, which classify provider failures
//     and decide what is safe to retry.
//
// A minimal call:
//
//	adapter, _ := llm.NewGollmAdapter("openai", apiKey, llm.WithModel("gpt-4o"))
//	client := llm.NewClient(llm.WithProvider("openai", adapter))
//
//	resp, err := client.Complete(ctx, llm.Request{
//	    Model:    "gpt-4o",
//	    Messages: []llm.Message{llm.UserMessage("Hello")},
//	})
//
// Tool definitions attach to the request; the model's tool calls come back as
// content parts on the response message. Executing tools and feeding results
// back is the caller's job (the agent package implements that loop).
package llm
