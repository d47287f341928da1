package model

import (
	"github.com/cloudwego/eino/schema"
)

// Pricing is the USD cost per million text tokens for one model.
type Pricing struct {
	InputPerM  float64
	OutputPerM float64
}

var modelPricing = map[string]Pricing{
	"gemini-2.5-flash":      {InputPerM: 0.30, OutputPerM: 2.50},
	"gemini-2.5-flash-lite": {InputPerM: 0.10, OutputPerM: 0.40},
}

// ResolvePricing looks up the pricing table for a model name. Unknown
// models price at zero so cost tracking never blocks a response.
func ResolvePricing(model string) Pricing {
	return modelPricing[model]
}

// ComputeCost converts token usage into USD using the given pricing.
func ComputeCost(usage *schema.TokenUsage, p Pricing) (inputCost, outputCost, total float64) {
	if usage == nil {
		return 0, 0, 0
	}
	const perM = 1_000_000.0
	inputCost = p.InputPerM * float64(usage.PromptTokens) / perM
	outputCost = p.OutputPerM * float64(usage.CompletionTokens) / perM
	return inputCost, outputCost, inputCost + outputCost
}
