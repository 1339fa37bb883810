package ai

import (
	"fmt"
	"strings"
)

// CriterionPromptInput carries the rubric criterion details embedded into a
// per-criterion scoring prompt.
type CriterionPromptInput struct {
	Name        string
	Description string
	MaxScore    int
	Essay       string
}

// BuildGeneralPrompt produces the system and user messages for whole-essay feedback.
func BuildGeneralPrompt(rubricName, guidance, essay string) []Message {
	builder := strings.Builder{}
	builder.WriteString("You are an expert essay evaluator for ")
	builder.WriteString(rubricName)
	builder.WriteString(" exams.\n")
	builder.WriteString("Your task is to analyze and provide CONCISE feedback on essays based on the following rubric:\n\n")
	builder.WriteString(guidance)
	builder.WriteString("\n\nPlease provide a SHORT, focused feedback with:\n")
	builder.WriteString("1. **Overall Score**: Clear score/grade based on the exam's scoring system\n")
	builder.WriteString("2. **Key Strengths**: 2-3 main strong points (use bullet points)\n")
	builder.WriteString("3. **Areas for Improvement**: 2-3 specific areas to work on (use bullet points)\n")
	builder.WriteString("4. **Quick Tips**: 2-3 actionable suggestions\n\n")
	builder.WriteString("Keep your response under 300 words. Use markdown formatting (**bold** for headings, bullet points). Be constructive and encouraging.")

	user := fmt.Sprintf("Please analyze this %s essay and provide detailed feedback:\n\nEssay: %q", rubricName, essay)

	return []Message{
		{Role: RoleSystem, Content: builder.String()},
		{Role: RoleUser, Content: user},
	}
}

// BuildCriterionPrompt produces messages requesting a strict-JSON score for one criterion.
func BuildCriterionPrompt(input CriterionPromptInput) []Message {
	builder := strings.Builder{}
	builder.WriteString("You are an expert essay evaluator scoring a single assessment criterion.\n\n")
	builder.WriteString("Criterion: ")
	builder.WriteString(input.Name)
	builder.WriteString("\nWhat it measures: ")
	builder.WriteString(input.Description)
	fmt.Fprintf(&builder, "\nMaximum score: %d\n\n", input.MaxScore)
	builder.WriteString("Respond with ONLY a JSON object, no markdown, in exactly this shape:\n")
	fmt.Fprintf(&builder, `{"score": <number 0-%d>, "maxScore": %d, "feedback": "<2-3 sentences>", "suggestions": ["<suggestion>", "<suggestion>"]}`, input.MaxScore, input.MaxScore)

	user := fmt.Sprintf("Score this essay on the %s criterion:\n\nEssay: %q", input.Name, input.Essay)

	return []Message{
		{Role: RoleSystem, Content: builder.String()},
		{Role: RoleUser, Content: user},
	}
}

// BuildTodoPrompt produces messages requesting actionable todo items derived
// from the feedback already given for one criterion.
func BuildTodoPrompt(criterionName, feedback, essay string) []Message {
	builder := strings.Builder{}
	builder.WriteString("You are an expert writing coach. Based on the feedback a student received for the ")
	builder.WriteString(criterionName)
	builder.WriteString(" criterion, produce 2-3 concrete improvement tasks.\n\n")
	builder.WriteString("Respond with ONLY a JSON array, no markdown, in exactly this shape:\n")
	builder.WriteString(`[{"title": "<short task>", "description": "<how to do it>", "priority": "low|medium|high"}]`)

	user := fmt.Sprintf("Feedback received: %q\n\nEssay: %q", feedback, essay)

	return []Message{
		{Role: RoleSystem, Content: builder.String()},
		{Role: RoleUser, Content: user},
	}
}

// BuildChatMessages prepends the tutoring persona to the prior conversation history.
func BuildChatMessages(rubricName, originalEssay string, history []Message) []Message {
	builder := strings.Builder{}
	builder.WriteString("You are an expert essay tutor for ")
	builder.WriteString(rubricName)
	builder.WriteString(" exams. You have already provided feedback on the student's essay.\n\n")
	fmt.Fprintf(&builder, "Original essay: %q\n\n", originalEssay)
	builder.WriteString("Your role is to:\n")
	builder.WriteString("1. Answer questions about your previous feedback\n")
	builder.WriteString("2. Clarify assessment criteria\n")
	builder.WriteString("3. Provide additional guidance on essay writing for this exam type\n")
	builder.WriteString("4. Suggest specific improvements\n\n")
	builder.WriteString("IMPORTANT RESTRICTIONS:\n")
	builder.WriteString("- Only discuss topics related to the essay feedback, writing improvement, and exam preparation\n")
	builder.WriteString("- Do not answer questions unrelated to essay writing or exam preparation\n")
	builder.WriteString("- If asked about unrelated topics, politely redirect the conversation back to essay improvement\n")
	builder.WriteString("- Stay focused on helping the student improve their writing skills\n")
	builder.WriteString("- Keep responses SHORT and CONCISE (under 150 words)\n")
	builder.WriteString("- Use bullet points when listing multiple items\n\n")
	builder.WriteString("Be helpful, encouraging, and educational in your responses.")

	messages := make([]Message, 0, len(history)+1)
	messages = append(messages, Message{Role: RoleSystem, Content: builder.String()})
	messages = append(messages, history...)
	return messages
}

// BuildImprovementPrompt produces messages asking the model to judge how well
// an edited essay addresses one todo item.
func BuildImprovementPrompt(originalEssay, editedEssay, criterionName, todoTitle string) []Message {
	builder := strings.Builder{}
	builder.WriteString("You are an expert essay evaluator judging whether a revision improved an essay.\n\n")
	builder.WriteString("The student was asked to work on the ")
	builder.WriteString(criterionName)
	builder.WriteString(" criterion, specifically: ")
	builder.WriteString(todoTitle)
	builder.WriteString("\n\nRespond with ONLY a JSON object, no markdown, in exactly this shape:\n")
	builder.WriteString(`{"improvementScore": <number 1-10>, "feedback": "<2-3 sentences>", "suggestions": ["<next step>"]}`)

	user := fmt.Sprintf("Original essay: %q\n\nEdited essay: %q", originalEssay, editedEssay)

	return []Message{
		{Role: RoleSystem, Content: builder.String()},
		{Role: RoleUser, Content: user},
	}
}
