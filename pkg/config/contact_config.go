package config

// 联系页文案与按钮布局

const (
	// ContactSuccessMessage 提交成功提示
	ContactSuccessMessage = "Message sent successfully!"

	// ContactFailureMessage 提交失败提示
	ContactFailureMessage = "Failed to send message. Please try again."

	// ContactSendingMessage 提交中提示
	ContactSendingMessage = "Sending..."

	// ContactInvalidMessage 表单校验失败提示
	ContactInvalidMessage = "Please fill in your name, a valid email and a message."

	// ContactSubmitTimeoutSeconds 单次提交的超时（秒）
	ContactSubmitTimeoutSeconds = 10.0

	// ContactButtonWidth / ContactButtonHeight 发送按钮尺寸（屏幕像素）
	ContactButtonWidth  = 160
	ContactButtonHeight = 40

	// ContactButtonMarginBottom 发送按钮距窗口底部的距离
	ContactButtonMarginBottom = 48
)

// ContactSectionTitles 联系页内容块标题，自上而下
// 第 3-5 块是联系方式卡片，作为一组交错入场
var ContactSectionTitles = []string{
	"Contact Me",
	"Get In Touch",
	"Email",
	"Phone",
	"Location",
	"Send a Message",
	"Let's Build Something",
}

// ContactSectionLines 每个内容块的正文，与 ContactSectionTitles 一一对应
var ContactSectionLines = [][]string{
	{"Let's get in touch! Feel free to reach out with any questions or opportunities."},
	{"I'm interested in full time or freelance opportunities.", "Always ready to discuss new projects and creative ideas."},
	{"hello@example.com"},
	{"+1 (555) 010-0199"},
	{"Remote"},
	{"Press Enter or click Send Message to submit the form."},
	{"Thanks for scrolling all the way down."},
}
