package suggest

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/ai/azopenai"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"

	"github.com/NishaKushwah2004/AccessWAI/internal/config"
)

// AzureOpenAIClient is the Completer backed by an Azure OpenAI deployment.
type AzureOpenAIClient struct {
	client     *azopenai.Client
	deployment string
}

// NewAzureOpenAIClient creates a client from the given credentials.
// The deployment name is stored and used for all subsequent calls.
func NewAzureOpenAIClient(creds config.AICredentials) (*AzureOpenAIClient, error) {
	keyCredential := azcore.NewKeyCredential(creds.APIKey)
	client, err := azopenai.NewClientWithKeyCredential(creds.Endpoint, keyCredential, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating Azure OpenAI client: %w", err)
	}
	return &AzureOpenAIClient{
		client:     client,
		deployment: creds.Deployment,
	}, nil
}

// Complete sends the prompt to the deployment and returns the completion text.
func (c *AzureOpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.GetChatCompletions(
		ctx,
		azopenai.ChatCompletionsOptions{
			DeploymentName: to.Ptr(c.deployment),
			Messages: []azopenai.ChatRequestMessageClassification{
				&azopenai.ChatRequestUserMessage{
					Content: azopenai.NewChatRequestUserMessageContent(prompt),
				},
			},
		},
		nil,
	)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != nil {
		return *resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("no completion received from deployment %s", c.deployment)
}
