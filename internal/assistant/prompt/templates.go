package prompt

// CardSeparator divides flashcards in the model output.
const CardSeparator = "---"

// Explain: topic, level, subject.
const explainTemplate = `Explain the concept of "%s" in %s level terms for a %s student.
Make it clear, concise, and include:
1. Simple definition
2. Key points to remember
3. Real-world example or analogy
4. Common misconceptions (if any)

Keep the explanation engaging and easy to understand.`

// Summarize: length, lower-case length, source text.
const summarizeTemplate = `Summarize the following text in %s format.

Create a %s summary with:
- Main points and key concepts
- Important facts and figures
- Clear structure with bullet points

Text to summarize:
%s`

// Quiz: count, question type, topic, difficulty.
const quizTemplate = `Generate %d %s questions about "%s" at %s difficulty level.

Format each question as:
Q[number]. [Question]
A) [Option 1]
B) [Option 2]
C) [Option 3]
D) [Option 4]
Correct Answer: [Letter]
Explanation: [Brief explanation]

Make questions challenging yet fair. Include practical applications where possible.`

// Flashcards: count, topic.
const flashcardsTemplate = `Create %d flashcards about "%s".

Format each flashcard as:

CARD [number]:
FRONT: [Question or term]
BACK: [Answer or definition with brief explanation]
` + CardSeparator + `

Make flashcards concise and focused on key concepts.
Include important terms, formulas, dates, or definitions.`

// Chat: the latest question only.
const chatTemplate = `As an AI Study Buddy, answer this student's question clearly and helpfully:

Question: %s

Provide:
1. A clear, direct answer
2. Additional context or explanation if needed
3. Related concepts they might want to explore
4. Encouragement and study tips if appropriate

Be friendly, supportive, and educational.`
