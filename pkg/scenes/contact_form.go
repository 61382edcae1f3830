package scenes

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// ContactForm 联系表单内容
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Validate 检查必填字段
// name、email、message 必填，email 需要形如 a@b
func (f ContactForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("name is required")
	}
	at := strings.Index(f.Email, "@")
	if at <= 0 || at == len(f.Email)-1 {
		return fmt.Errorf("email %q is not valid", f.Email)
	}
	if strings.TrimSpace(f.Message) == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

// Submitter 负责把表单发送出去（邮件服务等）
// 在后台 goroutine 中调用，ctx 在超时或场景销毁时取消
type Submitter interface {
	Submit(ctx context.Context, form ContactForm) error
}

// SubmitterFunc 允许普通函数作为 Submitter
type SubmitterFunc func(ctx context.Context, form ContactForm) error

// Submit 实现 Submitter
func (f SubmitterFunc) Submit(ctx context.Context, form ContactForm) error {
	return f(ctx, form)
}

// LogSubmitter 只记录日志的提交器，邮件投递不在本程序范围内
type LogSubmitter struct{}

// Submit 实现 Submitter
func (LogSubmitter) Submit(ctx context.Context, form ContactForm) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log.Printf("[ContactScene] Message from %s <%s>: %q", form.Name, form.Email, form.Subject)
	return nil
}

// DefaultContactForm 窗口中没有文本输入，使用一份示例表单
func DefaultContactForm() ContactForm {
	return ContactForm{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Just saying hi!",
	}
}
