package analyses

import "fmt"

// analysisPrompt frames the request as JSON so the model mirrors the
// structure back. The output_format section describes each field, the
// response_format section pins the exact shape.
const analysisPromptTemplate = `{
   "request": "Analyze the resume against the provided job description and generate the following information. Avoid using personal names or identifiers in the output. Provide the response in a structured JSON format as outlined below.",
   "input_data": {
     "job_description": "%s",
     "resume": "%s"
   },
   "output_format": {
     "MatchScore": "Provide a score indicating how well the resume aligns with the job description (out of 100).",
     "KeyStrengths": [
       "List the candidate's key strengths that match the job description, focusing on technical skills, relevant experience, and accomplishments."
     ],
     "SkillsGap": [
       "Identify any significant skills or qualifications mentioned in the job description that are missing or underrepresented in the resume."
     ],
     "SuggestionsForImprovement": [
       "Offer actionable suggestions for improving the resume, such as adding missing skills, highlighting specific achievements, or clarifying technical expertise."
     ],
     "OverallAssessment": "Provide a brief summary of how the resume matches the job description, focusing on the candidate's strengths, areas for improvement, and potential adjustments to increase alignment with the job requirements."
   },
   "response_format": {
     "MatchScore": "[score]",
     "KeyStrengths": [
       "Strength 1",
       "Strength 2",
       "Strength 3"
     ],
     "SkillsGap": [
       "Gap 1",
       "Gap 2",
       "Gap 3"
     ],
     "SuggestionsForImprovement": [
       "Improvement suggestion 1",
       "Improvement suggestion 2",
       "Improvement suggestion 3"
     ],
     "OverallAssessment": "Summary of alignment with the job description, strengths, and areas for improvement."
   }
 }`

func analysisPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(analysisPromptTemplate, jobDescription, resumeText)
}

const jobDescriptionCheckTemplate = `Given the following text, determine whether it is a valid Job Description. If it is a valid Job Description, respond with 'Yes.' If it is not, respond with 'No.'

Text: %s

Reply with only 'Yes' or 'No' and don't add any other text and don't add any punctuation.`

func jobDescriptionCheckPrompt(jobDescription string) string {
	return fmt.Sprintf(jobDescriptionCheckTemplate, jobDescription)
}
