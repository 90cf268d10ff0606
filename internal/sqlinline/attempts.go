package sqlinline

const QEnsureGenerationAttempts = `--sql 6f71da34-1165-40a3-b0ac-e099162221f4
create table if not exists generation_attempts (
  id bigserial primary key,
  request_id text not null,
  position int not null,
  category text not null,
  style text not null,
  artifact_kind text not null,
  backend text not null,
  outcome text not null,
  failure_kind text,
  detail text,
  duration_ms bigint not null default 0,
  created_at timestamptz not null default now()
);
create index if not exists generation_attempts_request_idx on generation_attempts (request_id, position);
`

const QInsertGenerationAttempts = `--sql 6a8bf0fc-ded1-4c49-ab6a-e80db478c02e
insert into generation_attempts(
  request_id,
  position,
  category,
  style,
  artifact_kind,
  backend,
  outcome,
  failure_kind,
  detail,
  duration_ms
)
select
  $1::text,
  t.position,
  $2::text,
  $3::text,
  $4::text,
  t.backend,
  t.outcome,
  nullif(t.failure_kind, ''),
  nullif(t.detail, ''),
  t.duration_ms
from unnest($5::int[], $6::text[], $7::text[], $8::text[], $9::text[], $10::bigint[])
  as t(position, backend, outcome, failure_kind, detail, duration_ms);
`

const QListGenerationAttempts = `--sql 98f51c1b-7cfa-4bc6-8c0a-e2bedb80d971
select
  backend,
  outcome,
  coalesce(failure_kind, ''),
  coalesce(detail, ''),
  duration_ms
from generation_attempts
where request_id = $1::text
order by position asc;
`

const QBackendOutcomeStats = `--sql c576588f-2021-4e55-8471-67b8e618f374
select
  backend,
  outcome,
  count(*)::bigint
from generation_attempts
where created_at >= now() - make_interval(hours => $1::int)
group by backend, outcome
order by backend, outcome;
`
