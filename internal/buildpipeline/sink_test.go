package buildpipeline

import "testing"

func TestChannelSinkForwards(t *testing.T) {
	ch := make(chan Event, 2)
	EmitQueued(ChannelSink{Ch: ch}, []string{"a.ez", "b.ez"})
	close(ch)

	var files []string
	for ev := range ch {
		if ev.Status != StatusQueued || ev.Stage != StageCompile {
			t.Fatalf("unexpected event %+v", ev)
		}
		files = append(files, ev.File)
	}
	if len(files) != 2 || files[0] != "a.ez" || files[1] != "b.ez" {
		t.Fatalf("unexpected files %v", files)
	}
}

func TestNilSinks(t *testing.T) {
	Emit(nil, Event{Stage: StageBuild})
	ChannelSink{}.OnEvent(Event{})
}

func TestRecordingSink(t *testing.T) {
	var rec RecordingSink
	Emit(&rec, Event{File: "x.ez", Stage: StageWrite, Status: StatusDone})
	events := rec.Events()
	if len(events) != 1 || events[0].Stage != StageWrite {
		t.Fatalf("unexpected events %+v", events)
	}
}
