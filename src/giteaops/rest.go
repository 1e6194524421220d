package giteaops

import (
	"context"
	"fmt"
	"strings"
	"time"

	"code.gitea.io/sdk/gitea"
)

// ListRepos reports every repository the token can see as a fixed-width
// table.
func (o *Ops) ListRepos(ctx context.Context) string {
	if !o.enabled() {
		return notConfigured
	}
	client, err := o.api(ctx)
	if err != nil {
		return failure("저장소 목록 조회", nil, err)
	}

	repos, resp, err := client.SearchRepos(gitea.SearchRepoOptions{
		ListOptions: gitea.ListOptions{PageSize: 50},
	})
	if err != nil {
		return failure("저장소 목록 조회", resp, err)
	}
	if len(repos) == 0 {
		return "접근 가능한 저장소가 없습니다."
	}

	lines := []string{fmt.Sprintf("%-40s %-10s %-50s", "OWNER/NAME", "PRIVATE", "DESCRIPTION")}
	lines = append(lines, strings.Repeat("-", 100))
	for _, repo := range repos {
		private := "No"
		if repo.Private {
			private = "Yes"
		}
		lines = append(lines, fmt.Sprintf("%-40s %-10s %-50s",
			repo.FullName, private, truncate(repo.Description, 50)))
	}
	return strings.Join(lines, "\n")
}

// GetRepo reports one repository in detail.
func (o *Ops) GetRepo(ctx context.Context, owner, name string) string {
	if !o.enabled() {
		return notConfigured
	}
	label := fmt.Sprintf("저장소 '%s/%s' 조회", owner, name)
	client, err := o.api(ctx)
	if err != nil {
		return failure(label, nil, err)
	}

	repo, resp, err := client.GetRepo(owner, name)
	if err != nil {
		return failure(label, resp, err)
	}

	desc := repo.Description
	if desc == "" {
		desc = "(none)"
	}
	branch := repo.DefaultBranch
	if branch == "" {
		branch = "main"
	}
	lines := []string{
		fmt.Sprintf("Repository: %s", repo.FullName),
		fmt.Sprintf("  Description: %s", desc),
		fmt.Sprintf("  Private: %t", repo.Private),
		fmt.Sprintf("  Default Branch: %s", branch),
		fmt.Sprintf("  Stars: %d", repo.StarsCount),
		fmt.Sprintf("  Forks: %d", repo.ForksCount),
		fmt.Sprintf("  Size: %d KB", repo.Size),
		fmt.Sprintf("  Clone URL: %s", repo.CloneURL),
		fmt.Sprintf("  Created: %s", timestamp(repo.Created)),
		fmt.Sprintf("  Updated: %s", timestamp(repo.Updated)),
	}
	return strings.Join(lines, "\n")
}

// CreateRepo creates an auto-initialized repository for the token's user.
func (o *Ops) CreateRepo(ctx context.Context, name, description string, private bool) string {
	if !o.enabled() {
		return notConfigured
	}
	label := fmt.Sprintf("저장소 '%s' 생성", name)
	client, err := o.api(ctx)
	if err != nil {
		return failure(label, nil, err)
	}

	repo, resp, err := client.CreateRepo(gitea.CreateRepoOption{
		Name:        name,
		Description: description,
		Private:     private,
		AutoInit:    true,
	})
	if err != nil {
		return failure(label, resp, err)
	}

	fullName := repo.FullName
	if fullName == "" {
		fullName = name
	}
	return fmt.Sprintf("저장소 '%s' 생성 완료.\n  Clone URL: %s", fullName, repo.CloneURL)
}

// DeleteRepo deletes a repository.
func (o *Ops) DeleteRepo(ctx context.Context, owner, name string) string {
	if !o.enabled() {
		return notConfigured
	}
	label := fmt.Sprintf("저장소 '%s/%s' 삭제", owner, name)
	client, err := o.api(ctx)
	if err != nil {
		return failure(label, nil, err)
	}

	resp, err := client.DeleteRepo(owner, name)
	if err != nil {
		return failure(label, resp, err)
	}
	return fmt.Sprintf("저장소 '%s/%s' 삭제 완료.", owner, name)
}

// ListBranches reports a repository's branches with short commit ids.
func (o *Ops) ListBranches(ctx context.Context, owner, repo string) string {
	if !o.enabled() {
		return notConfigured
	}
	client, err := o.api(ctx)
	if err != nil {
		return failure("브랜치 목록 조회", nil, err)
	}

	branches, resp, err := client.ListRepoBranches(owner, repo, gitea.ListRepoBranchesOptions{})
	if err != nil {
		return failure("브랜치 목록 조회", resp, err)
	}
	if len(branches) == 0 {
		return fmt.Sprintf("저장소 '%s/%s'에 브랜치가 없습니다.", owner, repo)
	}

	lines := []string{fmt.Sprintf("%-40s %-15s", "BRANCH", "COMMIT (short)")}
	lines = append(lines, strings.Repeat("-", 55))
	for _, branch := range branches {
		commit := ""
		if branch.Commit != nil {
			commit = truncate(branch.Commit.ID, 8)
		}
		lines = append(lines, fmt.Sprintf("%-40s %-15s", branch.Name, commit))
	}
	return strings.Join(lines, "\n")
}

// ListUsers reports every Gitea user; the token must have admin rights.
func (o *Ops) ListUsers(ctx context.Context) string {
	if !o.enabled() {
		return notConfigured
	}
	client, err := o.api(ctx)
	if err != nil {
		return failure("사용자 목록 조회", nil, err)
	}

	users, resp, err := client.AdminListUsers(gitea.AdminListUsersOptions{
		ListOptions: gitea.ListOptions{PageSize: 50},
	})
	if err != nil {
		return failure("사용자 목록 조회", resp, err)
	}
	if len(users) == 0 {
		return "사용자가 없습니다."
	}

	lines := []string{fmt.Sprintf("%-25s %-35s %-8s", "USERNAME", "EMAIL", "ADMIN")}
	lines = append(lines, strings.Repeat("-", 68))
	for _, user := range users {
		admin := "No"
		if user.IsAdmin {
			admin = "Yes"
		}
		lines = append(lines, fmt.Sprintf("%-25s %-35s %-8s", user.UserName, user.Email, admin))
	}
	return strings.Join(lines, "\n")
}

// CreateWebhook adds a JSON webhook to a repository. With no events given
// it triggers on push.
func (o *Ops) CreateWebhook(ctx context.Context, owner, repo, targetURL string, events []string) string {
	if !o.enabled() {
		return notConfigured
	}
	if len(events) == 0 {
		events = []string{"push"}
	}
	client, err := o.api(ctx)
	if err != nil {
		return failure("웹훅 생성", nil, err)
	}

	hook, resp, err := client.CreateRepoHook(owner, repo, gitea.CreateHookOption{
		Type:   gitea.HookTypeGitea,
		Active: true,
		Events: events,
		Config: map[string]string{
			"url":          targetURL,
			"content_type": "json",
		},
	})
	if err != nil {
		return failure("웹훅 생성", resp, err)
	}

	return fmt.Sprintf("웹훅 생성 완료 (ID: %d)\n  URL: %s\n  Events: %s",
		hook.ID, targetURL, strings.Join(events, ", "))
}

// ListWebhooks reports a repository's webhooks.
func (o *Ops) ListWebhooks(ctx context.Context, owner, repo string) string {
	if !o.enabled() {
		return notConfigured
	}
	client, err := o.api(ctx)
	if err != nil {
		return failure("웹훅 목록 조회", nil, err)
	}

	hooks, resp, err := client.ListRepoHooks(owner, repo, gitea.ListHooksOptions{})
	if err != nil {
		return failure("웹훅 목록 조회", resp, err)
	}
	if len(hooks) == 0 {
		return fmt.Sprintf("저장소 '%s/%s'에 웹훅이 없습니다.", owner, repo)
	}

	lines := []string{fmt.Sprintf("%-8s %-50s %-8s %-30s", "ID", "URL", "ACTIVE", "EVENTS")}
	lines = append(lines, strings.Repeat("-", 96))
	for _, hook := range hooks {
		active := "No"
		if hook.Active {
			active = "Yes"
		}
		lines = append(lines, fmt.Sprintf("%-8d %-50s %-8s %-30s",
			hook.ID, truncate(hook.Config["url"], 50), active, truncate(strings.Join(hook.Events, ", "), 30)))
	}
	return strings.Join(lines, "\n")
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format(time.RFC3339)
}
