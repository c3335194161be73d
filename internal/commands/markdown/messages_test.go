package markdowncmd

import "testing"

func TestImportPostsCommandType(t *testing.T) {
	if got := (ImportPostsCommand{}).Type(); got != "blog.markdown.import_posts" {
		t.Fatalf("unexpected message type %q", got)
	}
}

func TestImportPostsCommandValidate(t *testing.T) {
	cases := []struct {
		name    string
		cmd     ImportPostsCommand
		wantErr bool
	}{
		{name: "valid", cmd: ImportPostsCommand{Directory: "_posts"}},
		{name: "missing directory", cmd: ImportPostsCommand{}, wantErr: true},
		{name: "blank directory", cmd: ImportPostsCommand{Directory: "  "}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cmd.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestSyncPostsCommandType(t *testing.T) {
	if got := (SyncPostsCommand{}).Type(); got != "blog.markdown.sync_posts" {
		t.Fatalf("unexpected message type %q", got)
	}
}

func TestSyncPostsCommandValidate(t *testing.T) {
	if err := (SyncPostsCommand{Directory: "_posts", DeleteOrphaned: true}).Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if err := (SyncPostsCommand{}).Validate(); err == nil {
		t.Fatal("expected validation error for missing directory")
	}
}
