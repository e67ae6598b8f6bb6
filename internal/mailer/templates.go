package mailer

import "html/template"

var tmplFuncs = template.FuncMap{
	"deref": func(f *float64) float64 {
		if f == nil {
			return 0
		}
		return *f
	},
}

var submissionReceivedTmpl = template.Must(template.New("submission_received").Parse(`
<h2>Thank You for Your Submission</h2>
<p>Dear {{.ContactName}},</p>
<p>We have received your project submission for <strong>{{.FacilityName}}</strong>.</p>
<h3>What Happens Next?</h3>
<ul>
  <li>Our team will review your submission within 3-5 business days.</li>
  <li>We may contact you if we need additional information.</li>
  <li>Once approved, your project will be visible to potential donors on our platform.</li>
</ul>
<p>If you have any questions, please contact us at support@hromada.org</p>
<p>Thank you for working to rebuild Ukraine's communities.</p>
<p>Best regards,<br>The Hromada Team</p>
`))

var newSubmissionAlertTmpl = template.Must(template.New("new_submission_alert").Parse(`
<h2>New Project Submission</h2>
<p>A new project has been submitted for review.</p>
<h3>Municipality Information</h3>
<ul>
  <li><strong>Municipality:</strong> {{.Data.MunicipalityName}}</li>
  <li><strong>Email:</strong> {{.Data.MunicipalityEmail}}</li>
  {{if .Data.Region}}<li><strong>Region:</strong> {{.Data.Region}}</li>{{end}}
</ul>
<h3>Project Details</h3>
<ul>
  <li><strong>Facility:</strong> {{.Data.FacilityName}}</li>
  <li><strong>Category:</strong> {{.Data.Category}}</li>
  <li><strong>Type:</strong> {{.Data.ProjectType}}</li>
  <li><strong>Urgency:</strong> {{.Data.Urgency}}</li>
</ul>
<h3>Brief Description</h3>
<p>{{.Data.BriefDescription}}</p>
<h3>Contact Information</h3>
<ul>
  <li><strong>Name:</strong> {{.Data.ContactName}}</li>
  <li><strong>Email:</strong> {{.Data.ContactEmail}}</li>
  {{if .Data.ContactPhone}}<li><strong>Phone:</strong> {{.Data.ContactPhone}}</li>{{end}}
</ul>
<p><a href="{{.AppURL}}/admin">Review in Admin Dashboard</a></p>
`))

var submissionApprovedTmpl = template.Must(template.New("submission_approved").Parse(`
<h2>Great News!</h2>
<p>Dear {{.Data.ContactName}},</p>
<p>Your project <strong>{{.Data.FacilityName}}</strong> has been approved and is now live on the Hromada platform!</p>
<p>Potential donors can now see your project and express interest in supporting it.</p>
<p><a href="{{.AppURL}}/projects/{{.Data.ProjectID}}">View Your Project</a></p>
<p>We encourage you to share this link with your network to increase visibility.</p>
<p>Thank you for working to rebuild Ukraine's communities.</p>
<p>Best regards,<br>The Hromada Team</p>
`))

var submissionRejectedTmpl = template.Must(template.New("submission_rejected").Parse(`
<h2>Project Submission Update</h2>
<p>Dear {{.ContactName}},</p>
<p>Thank you for submitting your project <strong>{{.FacilityName}}</strong> to Hromada.</p>
<p>After review, we were unable to approve your submission at this time for the following reason:</p>
<blockquote style="padding: 10px 20px; background: #f5f5f5; border-left: 3px solid #ccc; margin: 20px 0;">
  {{.Reason}}
</blockquote>
<p>You are welcome to address these concerns and submit a new application. If you have questions, please contact us at support@hromada.org</p>
<p>Best regards,<br>The Hromada Team</p>
`))

var donorWelcomeTmpl = template.Must(template.New("donor_welcome").Funcs(tmplFuncs).Parse(`
<h2>Welcome to Hromada</h2>
<p>Dear {{.Data.DonorName}},</p>
<p>Thank you for your donation to <strong>{{.Data.ProjectName}}</strong>{{if .Data.Amount}} of <strong>${{printf "%.2f" (deref .Data.Amount)}}</strong>{{end}} via {{.Data.PaymentMethod}}.</p>
<p>We have created a donor account for you so you can track your donation through to delivery:</p>
<ul>
  <li><strong>Email:</strong> {{.Data.DonorEmail}}</li>
  <li><strong>Temporary password:</strong> {{.Data.TemporaryPassword}}</li>
</ul>
<p><a href="{{.AppURL}}/donor">Open Your Donor Dashboard</a></p>
<p>We will confirm receipt of your funds shortly.</p>
<p>Best regards,<br>The Hromada Team</p>
`))

var donationConfirmationTmpl = template.Must(template.New("donation_confirmation").Parse(`
<h2>Donation Confirmation Received</h2>
<p>Dear {{.Data.DonorName}},</p>
<p>Thank you for supporting <strong>{{.Data.ProjectName}}</strong>.</p>
<p>We will confirm receipt of your funds shortly. You can track the donation in your donor dashboard.</p>
<p><a href="{{.AppURL}}/donor">Open Your Donor Dashboard</a></p>
<p>Best regards,<br>The Hromada Team</p>
`))

var donationAlertTmpl = template.Must(template.New("donation_alert").Funcs(tmplFuncs).Parse(`
<h2>New Donation Confirmation</h2>
<ul>
  <li><strong>Donor:</strong> {{.Data.DonorName}} ({{.Data.DonorEmail}})</li>
  {{if .Data.DonorOrganization}}<li><strong>Organization:</strong> {{.Data.DonorOrganization}}</li>{{end}}
  <li><strong>Project:</strong> {{.Data.ProjectName}}</li>
  <li><strong>Amount:</strong> {{if .Data.Amount}}${{printf "%.2f" (deref .Data.Amount)}}{{else}}TBD{{end}}</li>
  <li><strong>Method:</strong> {{.Data.PaymentMethod}}</li>
  {{if .Data.ReferenceNumber}}<li><strong>Reference:</strong> {{.Data.ReferenceNumber}}</li>{{end}}
  <li><strong>New donor:</strong> {{if .Data.IsNewDonor}}yes{{else}}no{{end}}</li>
</ul>
<p><a href="{{.AppURL}}/admin">Open Dashboard</a></p>
`))

var donationForwardedTmpl = template.Must(template.New("donation_forwarded").Funcs(tmplFuncs).Parse(`
<h2>Your Donation Has Been Forwarded</h2>
<p>Dear {{.Data.DonorName}},</p>
<p>Your donation to <strong>{{.Data.ProjectName}}</strong>{{if .Data.Amount}} of <strong>${{printf "%.2f" (deref .Data.Amount)}}</strong>{{end}} has been wired onward to the recipient municipality in Ukraine.</p>
{{if .Data.ReferenceNumber}}<p>Reference number: {{.Data.ReferenceNumber}}</p>{{end}}
<p>Thank you for helping rebuild Ukraine's communities.</p>
<p>Best regards,<br>The Hromada Team</p>
`))

var contactAlertTmpl = template.Must(template.New("contact_alert").Parse(`
<h2>New Donor Inquiry</h2>
<ul>
  <li><strong>Name:</strong> {{.Data.Name}} ({{.Data.Email}})</li>
  {{if .Data.Organization}}<li><strong>Organization:</strong> {{.Data.Organization}}</li>{{end}}
  <li><strong>Project:</strong> {{.Data.ProjectName}}</li>
</ul>
<h3>Message</h3>
<p>{{.Data.Message}}</p>
<p><a href="{{.AppURL}}/admin">Open Dashboard</a></p>
`))
