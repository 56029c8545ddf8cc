/*
go-fadetrack tracks objects across a sequence of video frame detection
lists.  Each frame's detections are greedily matched to the objects seen in
previous frames by label and bounding box overlap, so an object keeps its
identity despite detector noise, missed frames and jitter.

Every tracked object carries a "brightness" which fades each frame and is
topped up by matching detections.  Objects that are no longer detected fade
out and are dropped.

See the tracker subpackage for the tracker itself, render for drawing
tracked objects and example/frames for a runnable demo.
*/
package fadetrack
