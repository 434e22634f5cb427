/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/valpere/bhasha/internal/config"
	"github.com/valpere/bhasha/internal/translation"
	"github.com/valpere/bhasha/internal/translator"
)

// buildCompleter constructs the chat-completion client named by
// openai.client.
func buildCompleter(c *config.Config) (translator.Completer, error) {
	switch c.OpenAI.Client {
	case "", "http":
		return translator.NewOpenAIService(c.OpenAI.ServiceConfig), nil
	case "sdk":
		return translator.NewOpenAISDKService(c.OpenAI.ServiceConfig), nil
	default:
		return nil, fmt.Errorf("unknown openai client: %s", c.OpenAI.Client)
	}
}

// buildService wires the translation service with a fresh process-wide
// cache.
func buildService(c *config.Config) (*translation.Service, error) {
	completer, err := buildCompleter(c)
	if err != nil {
		return nil, err
	}
	logger.Debug("translation service configured",
		"client", completer.Name(),
		"model", c.OpenAI.Model,
		"base_url", c.OpenAI.BaseURL,
		"api_key_set", c.HasAPIKey())
	return translation.NewService(completer, translation.NewCache(), c.Translate, logger), nil
}
