// Package model defines the minimal language-model abstraction used for
// optional plan suggestion, plus a MockModel for tests. Provider adapters
// live in the model/anthropic and model/openai subpackages.
package model
