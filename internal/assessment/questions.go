package assessment

// Questions is the full questionnaire, two questions per category.
var Questions = []Question{
	{
		ID:       "ai-sec-1",
		Category: CategoryFundamentals,
		Text:     "How well do you understand the security risks specific to AI systems?",
		Options: []Option{
			{Text: "I have no prior knowledge", Score: 0},
			{Text: "I have read articles but never worked with it", Score: 3},
			{Text: "I can identify basic risks (bias, privacy)", Score: 6},
			{Text: "I can design security controls for AI systems", Score: 10},
		},
	},
	{
		ID:       "ai-sec-2",
		Category: CategoryFundamentals,
		Text:     "Have you implemented or audited security measures on ML models in production?",
		Options: []Option{
			{Text: "I have never worked with ML in production", Score: 0},
			{Text: "Only in development/sandbox environments", Score: 4},
			{Text: "I have implemented some basic measures", Score: 7},
			{Text: "I have led full ML security audits", Score: 10},
		},
	},
	{
		ID:       "prompt-1",
		Category: CategoryPromptInjection,
		Text:     "How familiar are you with prompt injection techniques?",
		Options: []Option{
			{Text: "I don't know what prompt injection is", Score: 0},
			{Text: "I understand the theoretical concept", Score: 4},
			{Text: "I have tried basic attacks in controlled environments", Score: 7},
			{Text: "I can design robust defenses against prompt injection", Score: 10},
		},
	},
	{
		ID:       "prompt-2",
		Category: CategoryPromptInjection,
		Text:     "Have you worked with LLM jailbreaking techniques?",
		Options: []Option{
			{Text: "I have no experience", Score: 0},
			{Text: "I have read about famous cases (DAN, etc.)", Score: 3},
			{Text: "I have replicated known attacks", Score: 6},
			{Text: "I develop countermeasures and red team tests", Score: 10},
		},
	},
	{
		ID:       "safety-1",
		Category: CategoryModelSafety,
		Text:     "Do you understand AI alignment and model safety concepts?",
		Options: []Option{
			{Text: "These terms are new to me", Score: 0},
			{Text: "I understand their importance but not the technical details", Score: 4},
			{Text: "I know techniques like RLHF and constitutional AI", Score: 7},
			{Text: "I have implemented alignment strategies in real projects", Score: 10},
		},
	},
	{
		ID:       "safety-2",
		Category: CategoryModelSafety,
		Text:     "What experience do you have evaluating models for adversarial behaviors?",
		Options: []Option{
			{Text: "None", Score: 0},
			{Text: "I have used basic evaluation tools", Score: 4},
			{Text: "I design custom test cases", Score: 7},
			{Text: "I lead model red teaming programs", Score: 10},
		},
	},
	{
		ID:       "threat-1",
		Category: CategoryThreatModeling,
		Text:     "Can you apply threat modeling specific to AI systems?",
		Options: []Option{
			{Text: "I don't know how to adapt it to AI", Score: 0},
			{Text: "I use traditional frameworks (STRIDE, PASTA)", Score: 4},
			{Text: "I adapt frameworks to account for ML risks", Score: 7},
			{Text: "I develop threat models specific to AI agents", Score: 10},
		},
	},
	{
		ID:       "threat-2",
		Category: CategoryThreatModeling,
		Text:     "Do you know the threats specific to autonomous AI agents?",
		Options: []Option{
			{Text: "I am not familiar with AI agents", Score: 0},
			{Text: "I understand their basic capabilities", Score: 3},
			{Text: "I can identify specific attack vectors", Score: 7},
			{Text: "I design secure architectures for agentic AI", Score: 10},
		},
	},
	{
		ID:       "gov-1",
		Category: CategoryGovernance,
		Text:     "How familiar are you with AI regulations (EU AI Act, etc.)?",
		Options: []Option{
			{Text: "I don't know the current regulations", Score: 0},
			{Text: "I know they exist but not the details", Score: 3},
			{Text: "I can explain the main requirements", Score: 7},
			{Text: "I implement full compliance programs", Score: 10},
		},
	},
	{
		ID:       "gov-2",
		Category: CategoryGovernance,
		Text:     "Have you implemented AI governance frameworks in your organization?",
		Options: []Option{
			{Text: "We have no AI governance", Score: 0},
			{Text: "We are evaluating options", Score: 3},
			{Text: "We have basic policies in place", Score: 6},
			{Text: "I lead the AI governance program", Score: 10},
		},
	},
}
